package importing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize_SemicolonDelimiter(t *testing.T) {
	header, rows, err := Tokenize([]byte("Ad;Soyad;TC Kimlik No\nAyşe;Yılmaz;12345678901\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"Ad", "Soyad", "TC Kimlik No"}, header)
	require.Equal(t, [][]string{{"Ayşe", "Yılmaz", "12345678901"}}, rows)
}

func TestTokenize_CommaDelimiter(t *testing.T) {
	header, rows, err := Tokenize([]byte("Ad,Soyad\nAyşe,Yılmaz\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"Ad", "Soyad"}, header)
	require.Equal(t, [][]string{{"Ayşe", "Yılmaz"}}, rows)
}

func TestTokenize_SemicolonWinsTie(t *testing.T) {
	header, _, err := Tokenize([]byte("a;b,c\nx;y,z\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b,c"}, header)
}

func TestTokenize_DelimiterSniffedFromHeaderOnly(t *testing.T) {
	// Commas inside data cells must not flip a semicolon file.
	header, rows, err := Tokenize([]byte("Ad;Soyad\nYılmaz, Ayşe;Kaya\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"Ad", "Soyad"}, header)
	require.Equal(t, [][]string{{"Yılmaz, Ayşe", "Kaya"}}, rows)
}

func TestTokenize_StripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Ad;Soyad\nAyşe;Yılmaz\n")...)
	header, _, err := Tokenize(data)
	require.NoError(t, err)
	require.Equal(t, "Ad", header[0])
}

func TestTokenize_QuotedFieldKeepsDelimiter(t *testing.T) {
	_, rows, err := Tokenize([]byte("a;b\n\"Yılmaz; Ayşe\";x\n"))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"Yılmaz; Ayşe", "x"}}, rows)
}

func TestTokenize_SkipsBlankLinesAndCRLF(t *testing.T) {
	header, rows, err := Tokenize([]byte("a;b\r\n\r\n1;2\r\n   \r\n3;4\r\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, header)
	require.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, rows)
}

func TestTokenize_TrimsCells(t *testing.T) {
	_, rows, err := Tokenize([]byte("a;b\n  1 ; 2  \n"))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"1", "2"}}, rows)
}

func TestTokenize_EmptyFile(t *testing.T) {
	for _, data := range [][]byte{nil, []byte(""), []byte("\r\n\r\n"), {0xEF, 0xBB, 0xBF}} {
		_, _, err := Tokenize(data)
		require.ErrorIs(t, err, ErrEmptyFile)
	}
}

func TestTokenize_RaggedRows(t *testing.T) {
	_, rows, err := Tokenize([]byte("a;b;c\n1;2\n1;2;3;4\n"))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"1", "2"}, {"1", "2", "3", "4"}}, rows)
}

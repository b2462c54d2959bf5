package importing

// Limits are the hard ceilings checked before any row is processed.
type Limits struct {
	MaxFileSize int64
	MaxRows     int
	PreviewRows int
}

func DefaultLimits() Limits {
	return Limits{
		MaxFileSize: 5 * 1024 * 1024,
		MaxRows:     2000,
		PreviewRows: 200,
	}
}

func (l Limits) CheckFileSize(size int) error {
	if size == 0 {
		return ErrEmptyFile
	}
	if int64(size) > l.MaxFileSize {
		return ErrFileTooLarge.WithDetails("file is %d bytes, limit is %d", size, l.MaxFileSize)
	}
	return nil
}

func (l Limits) CheckRowCount(rows int) error {
	if rows > l.MaxRows {
		return ErrTooManyRows.WithDetails("file has %d data rows, limit is %d", rows, l.MaxRows)
	}
	return nil
}

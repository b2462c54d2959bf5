package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/sendikahq/sendika/modules/catalog/domain/entities/reference"
	"github.com/sendikahq/sendika/modules/members/domain/aggregates/member"
	"github.com/sendikahq/sendika/modules/members/importing"
	"github.com/sendikahq/sendika/pkg/eventbus"
	"github.com/sendikahq/sendika/pkg/metrics"
)

// ImportCompletedEvent is published after a bulk import commits.
type ImportCompletedEvent struct {
	ActorID  string
	Imported int
	Skipped  int
}

// ImportService runs the bulk member import pipeline. Each call is
// self-contained: the reference catalog and the duplicate snapshot are
// loaded fresh per request and discarded with it.
type ImportService struct {
	members   member.Repository
	refs      reference.Repository
	publisher eventbus.EventBus
	logger    *logrus.Logger
	limits    importing.Limits
}

func NewImportService(
	members member.Repository,
	refs reference.Repository,
	publisher eventbus.EventBus,
	logger *logrus.Logger,
	limits importing.Limits,
) *ImportService {
	return &ImportService{
		members:   members,
		refs:      refs,
		publisher: publisher,
		logger:    logger,
		limits:    limits,
	}
}

type validatedRow struct {
	row      importing.CanonicalRow
	outcome  importing.RowOutcome
	resolved *importing.Resolved
}

// prepare runs the shared front half of validate and import: guardrails,
// tokenizing, header mapping, catalog load and per-row validation.
func (s *ImportService) prepare(ctx context.Context, file []byte) ([]validatedRow, error) {
	if err := s.limits.CheckFileSize(len(file)); err != nil {
		return nil, err
	}

	header, cells, err := importing.Tokenize(file)
	if err != nil {
		return nil, err
	}
	if err := s.limits.CheckRowCount(len(cells)); err != nil {
		return nil, err
	}

	keys := importing.NormalizeHeaders(header)

	catalog, err := importing.LoadCatalog(ctx, s.refs)
	if err != nil {
		return nil, err
	}
	validator := importing.NewValidator(catalog)

	out := make([]validatedRow, 0, len(cells))
	for i, rowCells := range cells {
		row := importing.MapRow(keys, rowCells, i+2)
		outcome, resolved := validator.ValidateRow(row)
		out = append(out, validatedRow{row: row, outcome: outcome, resolved: resolved})
	}
	return out, nil
}

// Validate checks every row and reports without touching the store. The
// preview is truncated to the configured cap; the summary always covers the
// whole file.
func (s *ImportService) Validate(ctx context.Context, file []byte) (*importing.ValidateReport, error) {
	metrics.ImportRequests.WithLabelValues("validate").Inc()

	rows, err := s.prepare(ctx, file)
	if err != nil {
		return nil, err
	}

	report := &importing.ValidateReport{
		TotalRows:   len(rows),
		PreviewRows: make([]importing.PreviewRow, 0, min(len(rows), s.limits.PreviewRows)),
		Errors:      []importing.RowIssue{},
	}
	for _, vr := range rows {
		switch vr.outcome.Status {
		case importing.StatusValid:
			report.Summary.Valid++
		case importing.StatusWarning:
			report.Summary.Warning++
		case importing.StatusError:
			report.Summary.Error++
		}
		report.Errors = append(report.Errors, vr.outcome.Issues...)
		if len(report.PreviewRows) < s.limits.PreviewRows {
			report.PreviewRows = append(report.PreviewRows, importing.PreviewRow{
				RowIndex: vr.row.Index,
				Data:     vr.row.Fields,
				Status:   vr.outcome.Status,
				Issues:   vr.outcome.Issues,
			})
		}
	}
	return report, nil
}

// Import validates the file and commits the valid, non-duplicate subset in
// one transaction. With skipErrors off, any invalid row aborts before a
// single write; with it on, defective rows are reported and skipped. A row
// that loses the unique-constraint race at insert time is folded into the
// duplicate report instead of failing the batch.
func (s *ImportService) Import(ctx context.Context, file []byte, skipErrors bool, actorID string) (*importing.ImportResult, error) {
	metrics.ImportRequests.WithLabelValues("import").Inc()

	rows, err := s.prepare(ctx, file)
	if err != nil {
		return nil, err
	}

	if !skipErrors {
		var issues []importing.RowIssue
		for _, vr := range rows {
			if vr.outcome.Status == importing.StatusError {
				issues = append(issues, vr.outcome.Issues...)
			}
		}
		if len(issues) > 0 {
			return nil, &importing.ValidationError{Issues: issues}
		}
	}

	existing, err := s.members.NationalIDs(ctx)
	if err != nil {
		return nil, err
	}

	result := &importing.ImportResult{
		Errors:               []importing.RowIssue{},
		DuplicateNationalIDs: []string{},
	}
	seen := make(map[string]struct{}, len(rows))
	duplicates := make(map[string]struct{})

	recordDuplicate := func(rowIndex int, nationalID string) {
		result.Errors = append(result.Errors, importing.RowIssue{
			RowIndex: rowIndex,
			Column:   importing.FieldNationalID,
			Message:  "national id is already registered",
		})
		if _, ok := duplicates[nationalID]; !ok {
			duplicates[nationalID] = struct{}{}
			result.DuplicateNationalIDs = append(result.DuplicateNationalIDs, nationalID)
		}
	}

	err = inTx(ctx, func(txCtx context.Context) error {
		for _, vr := range rows {
			if vr.outcome.Status == importing.StatusError {
				result.Errors = append(result.Errors, vr.outcome.Issues...)
				continue
			}

			nationalID := vr.resolved.NationalID
			if _, dup := existing[nationalID]; dup {
				recordDuplicate(vr.row.Index, nationalID)
				continue
			}
			if _, dup := seen[nationalID]; dup {
				recordDuplicate(vr.row.Index, nationalID)
				continue
			}
			seen[nationalID] = struct{}{}

			// Savepoint per row: a failed insert rolls back this row only
			// and the remaining rows still get their attempt.
			createErr := inSavepoint(txCtx, func(spCtx context.Context) error {
				_, err := s.members.Create(spCtx, vr.resolved.ToMember(actorID))
				return err
			})
			switch {
			case createErr == nil:
				result.Imported++
			case errors.Is(createErr, member.ErrDuplicateNationalID):
				// Lost the race against a concurrent insert.
				recordDuplicate(vr.row.Index, nationalID)
			default:
				s.logger.WithError(createErr).WithField("row", vr.row.Index).Error("member insert failed")
				result.Errors = append(result.Errors, importing.RowIssue{
					RowIndex: vr.row.Index,
					Message:  "row could not be saved",
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Skipped = len(rows) - result.Imported

	metrics.ImportRows.WithLabelValues("imported").Add(float64(result.Imported))
	metrics.ImportRows.WithLabelValues("skipped").Add(float64(result.Skipped))
	metrics.ImportRows.WithLabelValues("duplicate").Add(float64(len(result.DuplicateNationalIDs)))

	s.publisher.Publish(&ImportCompletedEvent{
		ActorID:  actorID,
		Imported: result.Imported,
		Skipped:  result.Skipped,
	})
	return result, nil
}

// SampleData gathers live catalog rows for the template exporters, so that
// a downloaded template resolves against the same store it will be imported
// into.
func (s *ImportService) SampleData(ctx context.Context) (importing.SampleData, error) {
	var data importing.SampleData
	var err error
	if data.Provinces, err = s.refs.Provinces(ctx); err != nil {
		return data, err
	}
	if data.Districts, err = s.refs.Districts(ctx); err != nil {
		return data, err
	}
	if data.Institutions, err = s.refs.Institutions(ctx); err != nil {
		return data, err
	}
	if data.Branches, err = s.refs.Branches(ctx); err != nil {
		return data, err
	}
	if data.Professions, err = s.refs.Professions(ctx); err != nil {
		return data, err
	}
	if data.TevkifatCenters, err = s.refs.TevkifatCenters(ctx); err != nil {
		return data, err
	}
	if data.TevkifatTitles, err = s.refs.TevkifatTitles(ctx); err != nil {
		return data, err
	}
	if data.MemberGroups, err = s.refs.MemberGroups(ctx); err != nil {
		return data, err
	}
	return data, nil
}

package contract

import (
	"context"

	"mm-voicenote-be/internal/entity"
)

type ReportRepository interface {
	// List returns the user's reports, most recent first, with the same
	// absent/corrupt handling as notes. Period filtering is the caller's
	// job; the repository keeps no period index.
	List(ctx context.Context, userId string) ([]*entity.Report, error)
	// Save prepends. Reports are immutable and never deleted in scope.
	Save(ctx context.Context, report *entity.Report) error
}

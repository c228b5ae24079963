package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mkorsten/foresight/internal/db"
	"github.com/mkorsten/foresight/internal/importer"
	"github.com/mkorsten/foresight/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportProject(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	generated, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	// Persist all entities atomically.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txItems := repository.NewSQLiteWorkItemRepo(tx)
		txVelocity := repository.NewSQLiteVelocityRepo(tx)
		txCapacity := repository.NewSQLiteCapacityRepo(tx)

		if err := txProjects.Create(ctx, generated.Project); err != nil {
			return fmt.Errorf("creating project: %w", err)
		}
		for _, wi := range generated.WorkItems {
			if err := txItems.Create(ctx, wi); err != nil {
				return fmt.Errorf("creating work item %q: %w", wi.Title, err)
			}
		}
		for _, rec := range generated.Velocity {
			if err := txVelocity.Create(ctx, rec); err != nil {
				return fmt.Errorf("creating velocity record: %w", err)
			}
		}
		for _, rec := range generated.Capacity {
			if err := txCapacity.Create(ctx, rec); err != nil {
				return fmt.Errorf("creating capacity record: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Project:       generated.Project,
		WorkItemCount: len(generated.WorkItems),
		VelocityCount: len(generated.Velocity),
		CapacityCount: len(generated.Capacity),
	}, nil
}

func formatValidationErrors(errs []error) error {
	if len(errs) == 1 {
		return fmt.Errorf("import validation failed: %w", errs[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "import validation failed with %d errors:", len(errs))
	for _, err := range errs {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return errors.New(b.String())
}

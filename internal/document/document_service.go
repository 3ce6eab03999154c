package document

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	documenterrors "go-arquivo/internal/document/errors"
	"go-arquivo/internal/shared/contextutil"
)

// TaxonomyKey caches the category tree. The taxonomy is migration-seeded
// and effectively immutable, so a long TTL is safe.
const (
	TaxonomyKey = "documents:taxonomy"
	taxonomyTTL = 12 * time.Hour
)

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	File(ctx context.Context, req FileDocumentRequest) (DocumentResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]DocumentResponse, error)
	GetTaxonomy(ctx context.Context) ([]CategoryResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// File appends a document to the employee record. The filing actor is
// taken from the session, never from the request body.
func (s *service) File(ctx context.Context, req FileDocumentRequest) (DocumentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	actor := contextutil.GetActor(ctx)

	docType, err := s.repo.FindTypeByID(ctx, req.DocumentTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DocumentResponse{}, documenterrors.ErrDocumentTypeNotFound
		}
		return DocumentResponse{}, err
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrEmployeeNotFound
	}

	doc := &Document{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		DocumentTypeID: docType.ID,
		FiledBy:        actor,
		FiledAt:        time.Now().UTC(),
		Notes:          req.Notes,
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		s.logger.Error("file document failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return DocumentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("document filed",
		zap.String("request_id", rid),
		zap.String("document_id", doc.ID.String()),
		zap.String("type", docType.Name),
		zap.String("filed_by", actor),
	)

	return DocumentResponse{
		ID:         doc.ID.String(),
		EmployeeID: doc.EmployeeID.String(),
		TypeID:     docType.ID.String(),
		TypeName:   docType.Name,
		FiledBy:    doc.FiledBy,
		FiledAt:    doc.FiledAt.Format(time.RFC3339),
		Notes:      doc.Notes,
	}, nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]DocumentResponse, error) {
	rows, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list documents failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	out := make([]DocumentResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, DocumentResponse{
			ID:           row.ID.String(),
			EmployeeID:   row.EmployeeID.String(),
			TypeID:       row.TypeID.String(),
			TypeName:     row.TypeName,
			CategoryName: row.CategoryName,
			FiledBy:      row.FiledBy,
			FiledAt:      row.FiledAt.Format(time.RFC3339),
			Notes:        row.Notes,
		})
	}
	return out, nil
}

// GetTaxonomy serves the category tree used by filing forms; cached in
// redis with singleflight collapsing concurrent misses.
func (s *service) GetTaxonomy(ctx context.Context) ([]CategoryResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, TaxonomyKey).Result(); err == nil {
			var resp []CategoryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(TaxonomyKey, func() (interface{}, error) {
		rows, err := s.repo.ListTaxonomy(ctx)
		if err != nil {
			return nil, err
		}

		resp := foldTaxonomy(rows)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, TaxonomyKey, jsonData, taxonomyTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]CategoryResponse), nil
}

func foldTaxonomy(rows []TaxonomyRow) []CategoryResponse {
	out := []CategoryResponse{}
	for _, row := range rows {
		n := len(out)
		if n == 0 || out[n-1].ID != row.CategoryID.String() {
			out = append(out, CategoryResponse{
				ID:    row.CategoryID.String(),
				Name:  row.CategoryName,
				Types: []DocumentTypeResponse{},
			})
			n++
		}
		out[n-1].Types = append(out[n-1].Types, DocumentTypeResponse{
			ID:             row.TypeID.String(),
			Name:           row.TypeName,
			RetentionYears: row.RetentionYears,
		})
	}
	return out
}

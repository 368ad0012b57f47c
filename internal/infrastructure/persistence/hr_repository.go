package persistence

import (
	"context"
	"errors"

	"github.com/bizos/backend/internal/domain/hr"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormJobPostingRepository implements JobPostingRepository using GORM
type GormJobPostingRepository struct {
	db *gorm.DB
}

// NewGormJobPostingRepository creates a new GormJobPostingRepository
func NewGormJobPostingRepository(db *gorm.DB) *GormJobPostingRepository {
	return &GormJobPostingRepository{db: db}
}

// FindByID finds a posting by its ID
func (r *GormJobPostingRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.JobPosting, error) {
	var posting hr.JobPosting
	if err := r.db.WithContext(ctx).First(&posting, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &posting, nil
}

// FindByIDForOwner finds a posting by ID scoped to an owner
func (r *GormJobPostingRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*hr.JobPosting, error) {
	var posting hr.JobPosting
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&posting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &posting, nil
}

// FindAllForOwner lists postings for an owner
func (r *GormJobPostingRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]hr.JobPosting, error) {
	var postings []hr.JobPosting
	query := r.db.WithContext(ctx).Model(&hr.JobPosting{}).Where("owner_id = ?", ownerID)
	query = applySearch(query, filter.Search, "title", "location")
	if err := applyFilter(query, filter).Find(&postings).Error; err != nil {
		return nil, err
	}
	return postings, nil
}

// FindByStatus lists postings in a given status for an owner
func (r *GormJobPostingRepository) FindByStatus(ctx context.Context, ownerID uuid.UUID, status hr.JobStatus, filter shared.Filter) ([]hr.JobPosting, error) {
	var postings []hr.JobPosting
	query := r.db.WithContext(ctx).Model(&hr.JobPosting{}).
		Where("owner_id = ? AND status = ?", ownerID, status)
	if err := applyFilter(query, filter).Find(&postings).Error; err != nil {
		return nil, err
	}
	return postings, nil
}

// Save creates or updates a posting
func (r *GormJobPostingRepository) Save(ctx context.Context, posting *hr.JobPosting) error {
	return r.db.WithContext(ctx).Save(posting).Error
}

// Delete deletes a posting. Candidates referencing it are left in place.
func (r *GormJobPostingRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&hr.JobPosting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForOwner counts postings for an owner
func (r *GormJobPostingRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&hr.JobPosting{}).Where("owner_id = ?", ownerID)
	query = applySearch(query, filter.Search, "title", "location")
	query = applyEqualityFilters(query, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormCandidateRepository implements CandidateRepository using GORM
type GormCandidateRepository struct {
	db *gorm.DB
}

// NewGormCandidateRepository creates a new GormCandidateRepository
func NewGormCandidateRepository(db *gorm.DB) *GormCandidateRepository {
	return &GormCandidateRepository{db: db}
}

// FindByID finds a candidate by its ID
func (r *GormCandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.Candidate, error) {
	var candidate hr.Candidate
	if err := r.db.WithContext(ctx).First(&candidate, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

// FindByIDForOwner finds a candidate by ID scoped to an owner
func (r *GormCandidateRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*hr.Candidate, error) {
	var candidate hr.Candidate
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

// FindByJob lists candidates attached to a job posting
func (r *GormCandidateRepository) FindByJob(ctx context.Context, ownerID, jobID uuid.UUID, filter shared.Filter) ([]hr.Candidate, error) {
	var candidates []hr.Candidate
	query := r.db.WithContext(ctx).Model(&hr.Candidate{}).
		Where("owner_id = ? AND job_id = ?", ownerID, jobID)
	if err := applyFilter(query, filter).Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

// FindAllForOwner lists candidates for an owner
func (r *GormCandidateRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]hr.Candidate, error) {
	var candidates []hr.Candidate
	query := r.db.WithContext(ctx).Model(&hr.Candidate{}).Where("owner_id = ?", ownerID)
	query = applySearch(query, filter.Search, "name", "email")
	if err := applyFilter(query, filter).Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

// Save creates or updates a candidate
func (r *GormCandidateRepository) Save(ctx context.Context, candidate *hr.Candidate) error {
	return r.db.WithContext(ctx).Save(candidate).Error
}

// Delete deletes a candidate
func (r *GormCandidateRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&hr.Candidate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountByJob counts candidates attached to a job posting
func (r *GormCandidateRepository) CountByJob(ctx context.Context, ownerID, jobID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&hr.Candidate{}).
		Where("owner_id = ? AND job_id = ?", ownerID, jobID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

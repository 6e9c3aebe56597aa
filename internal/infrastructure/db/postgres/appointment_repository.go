package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/legalsuite/case-management/internal/core/domain"
)

// AppointmentRepository persists appointments, scoped to the owning
// advocate.
type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}
	return a, nil
}

func (r *AppointmentRepository) ListByAdvocate(ctx context.Context, advocateID uint) ([]*domain.Appointment, error) {
	var appts []*domain.Appointment
	err := r.db.WithContext(ctx).
		Where("advocate_id = ?", advocateID).
		Order("appointment_date, appointment_time").
		Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, advocateID, id uint) (*domain.Appointment, error) {
	var a domain.Appointment
	err := r.db.WithContext(ctx).
		Where("id = ? AND advocate_id = ?", id, advocateID).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return &a, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	err := r.db.WithContext(ctx).
		Model(a).
		Update("status", a.Status).Error
	if err != nil {
		return nil, fmt.Errorf("update appointment status: %w", err)
	}
	return a, nil
}

func (r *AppointmentRepository) CountByAdvocateStatuses(ctx context.Context, advocateID uint, statuses []domain.AppointmentStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("advocate_id = ? AND status IN ?", advocateID, statuses).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count appointments: %w", err)
	}
	return n, nil
}

func (r *AppointmentRepository) RecentByAdvocate(ctx context.Context, advocateID uint, limit int) ([]*domain.Appointment, error) {
	var appts []*domain.Appointment
	err := r.db.WithContext(ctx).
		Where("advocate_id = ?", advocateID).
		Order("created_at DESC").
		Limit(limit).
		Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("recent appointments: %w", err)
	}
	return appts, nil
}

// PendingDates returns the dates of pending and confirmed appointments
// for the dashboard calendar.
func (r *AppointmentRepository) PendingDates(ctx context.Context, advocateID uint) ([]string, error) {
	var dates []string
	err := r.db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("advocate_id = ? AND status IN ?", advocateID,
			[]domain.AppointmentStatus{domain.AppointmentPending, domain.AppointmentConfirmed}).
		Pluck("appointment_date", &dates).Error
	if err != nil {
		return nil, fmt.Errorf("appointment dates: %w", err)
	}
	return dates, nil
}

package repository

import (
	"context"
	"time"

	"github.com/fajara33/rd-company/internal/domain/entity"
	domainRepo "github.com/fajara33/rd-company/internal/domain/repository"
	"github.com/fajara33/rd-company/internal/infrastructure/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type attendanceRepository struct {
	kv kvStore
}

// NewAttendanceRepository creates a new store-backed attendance repository
func NewAttendanceRepository(db *gorm.DB) domainRepo.AttendanceRepository {
	return &attendanceRepository{kv: kvStore{db: db}}
}

func (r *attendanceRepository) List(ctx context.Context) ([]entity.Attendance, error) {
	recs := []entity.Attendance{}
	if err := r.kv.load(ctx, database.KeyAttendance, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *attendanceRepository) Create(ctx context.Context, rec *entity.Attendance) error {
	storeMu.Lock()
	defer storeMu.Unlock()

	recs, err := r.List(ctx)
	if err != nil {
		return err
	}
	rec.ID = uuid.New().String()
	rec.Date = time.Now().UTC()
	recs = append(recs, *rec)
	return r.kv.save(ctx, database.KeyAttendance, recs)
}

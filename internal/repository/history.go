package repository

import (
	"time"

	"gotouch/internal/db"
	"gotouch/internal/model"
	"gotouch/internal/touch"
)

type HistoryRepository struct{}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

func (r *HistoryRepository) Save(plan touch.Plan, result touch.Result) error {
	status := model.StatusSuccess
	errMsg := ""
	if result.Err != nil {
		status = model.StatusFailed
		errMsg = result.Err.Error()
	}

	record := model.TouchRecord{
		Status:    status,
		Path:      result.Path,
		Action:    string(result.Action),
		Source:    plan.Source.String(),
		Mode:      plan.Mode.String(),
		ErrMsg:    errMsg,
		TouchedAt: time.Now(),
	}

	if result.Err == nil && result.Action != touch.ActionSkipped {
		atime, mtime := plan.Mode.Select(plan.Pair)
		if !atime.IsZero() {
			record.AccessTime = &atime
		}
		if !mtime.IsZero() {
			record.ModifiedTime = &mtime
		}
	}

	return db.DB.Create(&record).Error
}

type Stats struct {
	Total   int64
	Success int64
	Failed  int64
}

func (r *HistoryRepository) GetStats() (Stats, error) {
	var stats Stats
	if err := db.DB.Model(&model.TouchRecord{}).Count(&stats.Total).Error; err != nil {
		return stats, err
	}

	if err := db.DB.Model(&model.TouchRecord{}).
		Where("status = ?", model.StatusSuccess).
		Count(&stats.Success).Error; err != nil {
		return stats, err
	}

	stats.Failed = stats.Total - stats.Success
	return stats, nil
}

func (r *HistoryRepository) GetRecent(limit int) ([]model.TouchRecord, error) {
	var records []model.TouchRecord
	result := db.DB.
		Order("id desc").
		Limit(limit).
		Find(&records)

	return records, result.Error
}

func (r *HistoryRepository) GetFailed(limit int) ([]model.TouchRecord, error) {
	var records []model.TouchRecord
	result := db.DB.
		Where("status = ?", model.StatusFailed).
		Order("id desc").
		Limit(limit).
		Find(&records)

	return records, result.Error
}

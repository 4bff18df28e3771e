// Package database 基于 sqlite 的重命名历史存储
package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/moyu-x/batch-rename/internal"
	"github.com/moyu-x/batch-rename/pkg/logger"
)

// RenameRecord 单条重命名历史
type RenameRecord struct {
	ID        int64  `gorm:"primaryKey"`
	BatchID   string `gorm:"index;not null"`
	OldPath   string `gorm:"not null"`
	NewPath   string
	Status    string `gorm:"not null"`
	Mode      string `gorm:"not null"`
	Hash      string
	CreatedAt int64 `gorm:"not null"` // unix 秒
}

func (RenameRecord) TableName() string {
	return "rename_history"
}

// BatchSummary 一个批次的汇总信息
type BatchSummary struct {
	BatchID   string
	Mode      string
	Total     int64
	Succeeded int64
	CreatedAt int64
}

type Database struct {
	db *gorm.DB
}

// NewDatabase 打开或创建历史数据库
// 父目录不存在时自动创建，使用 WAL 模式单连接写入
func NewDatabase(dbPath string) (*Database, error) {
	expandedPath, err := expandPath(dbPath)
	if err != nil {
		logger.Get().Error().Err(err).Msg("展开数据库路径失败")
		return nil, err
	}

	logger.Get().Debug().Msgf("初始化历史数据库: %s", expandedPath)

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o755); err != nil {
		logger.Get().Error().Err(err).Msgf("创建数据库目录失败: %s", filepath.Dir(expandedPath))
		return nil, err
	}

	dsn := expandedPath + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.Get().Error().Err(err).Msg("打开数据库连接失败")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Get().Error().Err(err).Msg("获取数据库连接失败")
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&RenameRecord{}); err != nil {
		logger.Get().Error().Err(err).Msg("创建数据库表失败")
		return nil, err
	}

	return &Database{db: db}, nil
}

func expandPath(path string) (string, error) {
	if len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == '\\') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// InsertRecords 写入一个批次的全部记录
func (d *Database) InsertRecords(records []internal.RenameRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]RenameRecord, 0, len(records))
	for _, r := range records {
		rows = append(rows, RenameRecord{
			BatchID:   r.BatchID,
			OldPath:   r.OldPath,
			NewPath:   r.NewPath,
			Status:    r.Status,
			Mode:      r.Mode,
			Hash:      r.Hash,
			CreatedAt: r.CreatedAt,
		})
	}

	if err := d.db.Create(&rows).Error; err != nil {
		logger.Get().Error().Err(err).Msgf("写入历史记录失败，批次: %s", records[0].BatchID)
		return fmt.Errorf("写入历史记录失败: %w", err)
	}

	logger.Get().Debug().Msgf("写入 %d 条历史记录，批次: %s", len(rows), records[0].BatchID)
	return nil
}

// RecentBatches 返回最近的批次汇总，按时间倒序
func (d *Database) RecentBatches(limit int) ([]BatchSummary, error) {
	if limit < 1 {
		limit = internal.DefaultHistoryLimit
	}

	var summaries []BatchSummary
	err := d.db.Model(&RenameRecord{}).
		Select("batch_id, mode, count(*) as total, sum(case when status = 'Success' then 1 else 0 end) as succeeded, min(created_at) as created_at").
		Group("batch_id, mode").
		Order("max(id) desc").
		Limit(limit).
		Scan(&summaries).Error
	if err != nil {
		logger.Get().Error().Err(err).Msg("查询批次汇总失败")
		return nil, fmt.Errorf("查询批次汇总失败: %w", err)
	}
	return summaries, nil
}

// BatchRecords 返回指定批次的全部记录，按写入顺序
func (d *Database) BatchRecords(batchID string) ([]internal.RenameRecord, error) {
	var rows []RenameRecord
	if err := d.db.Where("batch_id = ?", batchID).Order("id").Find(&rows).Error; err != nil {
		logger.Get().Error().Err(err).Msgf("查询批次记录失败: %s", batchID)
		return nil, fmt.Errorf("查询批次记录失败: %w", err)
	}

	records := make([]internal.RenameRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, internal.RenameRecord{
			ID:        r.ID,
			BatchID:   r.BatchID,
			OldPath:   r.OldPath,
			NewPath:   r.NewPath,
			Status:    r.Status,
			Mode:      r.Mode,
			Hash:      r.Hash,
			CreatedAt: r.CreatedAt,
		})
	}
	return records, nil
}

// Close 关闭数据库连接
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		logger.Get().Error().Err(err).Msg("获取数据库连接失败")
		return err
	}
	return sqlDB.Close()
}

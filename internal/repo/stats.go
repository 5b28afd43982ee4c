// Package repo implements the data persistence layer for ingested messages,
// backed by GORM. This file provides the aggregate-statistics query behind
// GET /stats. All figures are derived at query time; nothing is cached.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-message-ingest/internal/domain"
)

// SenderCount is one messages_per_sender entry.
type SenderCount struct {
	From  string `json:"from"  gorm:"column:from_msisdn"`
	Count int64  `json:"count" gorm:"column:count"`
}

// StatsResult aggregates message-level analytics. FirstMessageTS and
// LastMessageTS are nil when the store is empty (serialized as JSON null).
type StatsResult struct {
	TotalMessages     int64         `json:"total_messages"`
	SendersCount      int64         `json:"senders_count"`
	MessagesPerSender []SenderCount `json:"messages_per_sender"`
	FirstMessageTS    *time.Time    `json:"first_message_ts"`
	LastMessageTS     *time.Time    `json:"last_message_ts"`
}

// Stats computes aggregate statistics over the whole messages table:
// total rows, distinct senders, the top 10 senders by message count
// (ties broken by sender ascending), and the first/last caller-asserted
// send timestamps.
func Stats(ctx context.Context, db *gorm.DB) (*StatsResult, error) {
	res := &StatsResult{MessagesPerSender: []SenderCount{}}

	if err := db.WithContext(ctx).Model(&domain.Message{}).Count(&res.TotalMessages).Error; err != nil {
		return nil, err
	}
	if res.TotalMessages == 0 {
		return res, nil
	}

	if err := db.WithContext(ctx).Model(&domain.Message{}).
		Distinct("from_msisdn").
		Count(&res.SendersCount).Error; err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).Model(&domain.Message{}).
		Select("from_msisdn, COUNT(*) AS count").
		Group("from_msisdn").
		Order("count DESC, from_msisdn ASC").
		Limit(10).
		Scan(&res.MessagesPerSender).Error; err != nil {
		return nil, err
	}

	// Fetch boundary timestamps by ordered single-row selects
	// (avoid MIN()/MAX() -> TEXT in SQLite).
	var row struct {
		TS time.Time
	}
	if err := db.WithContext(ctx).Model(&domain.Message{}).
		Select("ts").Order("ts ASC, message_id ASC").Limit(1).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	first := row.TS
	res.FirstMessageTS = &first

	if err := db.WithContext(ctx).Model(&domain.Message{}).
		Select("ts").Order("ts DESC, message_id DESC").Limit(1).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	last := row.TS
	res.LastMessageTS = &last

	return res, nil
}

// Package analytics 把点击记录汇总为统计摘要，不访问存储，可直接单测。
package analytics

import (
	"sort"
	"time"

	"shorturl-analytics/internal/model"
)

const (
	// WindowDays 直方图覆盖的回溯天数，加上今天共 WindowDays+1 个桶
	WindowDays = 30
	dateLayout = "2006-01-02"
	// 没有设备类型的历史记录归入 unknown
	unknownDevice = "unknown"
)

// DailyClick 单日点击数，Date 为 UTC 日期
type DailyClick struct {
	Date   string `json:"date"`
	Clicks int64  `json:"clicks"`
}

// Summary 链接统计摘要
type Summary struct {
	TotalClicks    int64            `json:"totalClicks"`
	UniqueVisitors int64            `json:"uniqueVisitors"`
	DailyClicks    []DailyClick     `json:"dailyClicks"`
	Devices        map[string]int64 `json:"devices"`
}

// Summarize 计算总点击、独立访客、最近 31 天的日直方图和设备分布。
// 未知 IP 的点击合并计为一个访客。早于窗口或晚于今天的点击只计入总数。
func Summarize(clicks []model.Click, now time.Time) Summary {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, -WindowDays)

	daily := make([]DailyClick, 0, WindowDays+1)
	index := make(map[string]int, WindowDays+1)
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		index[key] = len(daily)
		daily = append(daily, DailyClick{Date: key})
	}

	// 不依赖调用方给出的顺序
	sorted := make([]model.Click, len(clicks))
	copy(sorted, clicks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	visitors := make(map[string]struct{})
	unknownVisitor := false
	devices := make(map[string]int64)

	for _, c := range sorted {
		if c.SourceIP == nil || *c.SourceIP == "" {
			unknownVisitor = true
		} else {
			visitors[*c.SourceIP] = struct{}{}
		}

		device := c.DeviceType
		if device == "" {
			device = unknownDevice
		}
		devices[device]++

		if i, ok := index[c.Timestamp.UTC().Format(dateLayout)]; ok {
			daily[i].Clicks++
		}
	}

	unique := int64(len(visitors))
	if unknownVisitor {
		unique++
	}

	return Summary{
		TotalClicks:    int64(len(sorted)),
		UniqueVisitors: unique,
		DailyClicks:    daily,
		Devices:        devices,
	}
}

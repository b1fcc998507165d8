package model

import (
	"fmt"
	"frontdesk/shared/dto"
	"frontdesk/shared/money"
	"frontdesk/shared/timezone"
	"sort"
	"strconv"
	"strings"
	"time"
)

const PathReports = "/v1/reports/"

// FinishPath is the backend action that closes a shift.
func FinishPath(id int64) string {
	return PathReports + strconv.FormatInt(id, 10) + "/finish/"
}

// Report is one worker shift. A shift without a finish time is still running.
type Report struct {
	ID           int64        `json:"id"`
	Worker       *int64       `json:"worker"`
	WorkerName   string       `json:"worker_name,omitempty"`
	JTitle       *int64       `json:"jtitle"`
	JTitleName   string       `json:"jtitle_name,omitempty"`
	Start        *time.Time   `json:"start"`
	Finish       *time.Time   `json:"finish"`
	TotalPayment money.Amount `json:"total_payment"`
}

func (r Report) Active() bool {
	return r.Finish == nil
}

// Duration is the shift length, zero while the shift runs or when the start is unknown.
func (r Report) Duration() time.Duration {
	if r.Start == nil || r.Finish == nil || r.Finish.Before(*r.Start) {
		return 0
	}

	return r.Finish.Sub(*r.Start)
}

// DurationLabel renders whole hours and minutes, e.g. "8h 05m".
func (r Report) DurationLabel() string {
	if r.Active() {
		return "in progress"
	}

	d := r.Duration()

	return fmt.Sprintf("%dh %02dm", int64(d.Hours()), int64(d.Minutes())%60)
}

// Split separates running shifts from finished ones, keeping backend order.
func Split(reports []Report) (active, completed []Report) {
	active, completed = []Report{}, []Report{}

	for _, report := range reports {
		if report.Active() {
			active = append(active, report)
		} else {
			completed = append(completed, report)
		}
	}

	return active, completed
}

type GroupBy string

const (
	GroupByDate   GroupBy = "date"
	GroupByWorker GroupBy = "worker"
)

func (g GroupBy) Valid() bool {
	return g == GroupByDate || g == GroupByWorker
}

type PaymentGroup struct {
	Key     string       `json:"key"`
	Label   string       `json:"label"`
	Count   int          `json:"count"`
	Total   money.Amount `json:"total"`
	Reports []Report     `json:"reports"`
}

type PaymentsReport struct {
	From    string         `json:"from"`
	To      string         `json:"to"`
	GroupBy GroupBy        `json:"group_by"`
	Count   int            `json:"count"`
	Total   money.Amount   `json:"total"`
	Groups  []PaymentGroup `json:"groups"`
}

// BuildPaymentsReport keeps finished shifts whose hotel-local finish date falls inside period and
// totals their payments per group. Date groups are ordered by day, worker groups by name.
func BuildPaymentsReport(reports []Report, period dto.DateRange, groupBy GroupBy) PaymentsReport {
	res := PaymentsReport{
		From:    timezone.DateOf(period.From),
		To:      timezone.DateOf(period.To),
		GroupBy: groupBy,
		Total:   money.Zero,
		Groups:  []PaymentGroup{},
	}

	index := map[string]int{}

	for _, report := range reports {
		if report.Finish == nil || !period.Contains(*report.Finish) {
			continue
		}

		key, label := groupKey(report, groupBy)

		i, ok := index[key]
		if !ok {
			i = len(res.Groups)
			index[key] = i
			res.Groups = append(res.Groups, PaymentGroup{Key: key, Label: label, Total: money.Zero})
		}

		group := &res.Groups[i]
		group.Count++
		group.Total = group.Total.Add(report.TotalPayment)
		group.Reports = append(group.Reports, report)

		res.Count++
		res.Total = res.Total.Add(report.TotalPayment)
	}

	sort.SliceStable(res.Groups, func(i, j int) bool {
		if groupBy == GroupByWorker {
			return strings.ToLower(res.Groups[i].Label) < strings.ToLower(res.Groups[j].Label)
		}

		return res.Groups[i].Key < res.Groups[j].Key
	})

	return res
}

func groupKey(report Report, groupBy GroupBy) (key, label string) {
	if groupBy == GroupByWorker {
		if report.Worker == nil {
			return "unknown", "Unknown worker"
		}

		label = report.WorkerName
		if label == "" {
			label = "Worker " + strconv.FormatInt(*report.Worker, 10)
		}

		return strconv.FormatInt(*report.Worker, 10), label
	}

	day := timezone.DateOf(*report.Finish)

	return day, day
}

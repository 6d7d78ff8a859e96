package ban

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tawsil-app/ops-dashboard/internal/config"
	"github.com/tawsil-app/ops-dashboard/internal/redissvc"
)

var (
	cfg config.Config
	rdb *redis.Client
	ctx context.Context
)

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

func SetConfig(c config.Config) {
	cfg = c
}

// BanLogEntry records one client being blocked by the rate limiter.
type BanLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Time    time.Time `json:"time"`
}

const DailyBanLogKey = "ratelimit:banlog:daily"

func SendBanAlertEmail(bannedID string, route string, strikes int, r *http.Request) error {
	subject := fmt.Sprintf("BAN ALERT: %s blocked", bannedID)
	body := fmt.Sprintf("Target: %s\nRoute: %s\nStrikes: %d\nTime: %s", bannedID, route, strikes, time.Now().Format(time.RFC3339))

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", cfg.AlertFrom, cfg.AlertTo, subject, body)
	sendMail(subject, []byte(msg))

	logBanEvent(bannedID, route, strikes)
	return nil
}

func logBanEvent(target, route string, strikes int) {
	entry := BanLogEntry{
		Target:  target,
		Route:   route,
		Strikes: strikes,
		Time:    time.Now(),
	}
	data, _ := json.Marshal(entry)
	_ = rdb.RPush(ctx, DailyBanLogKey, data).Err()
}

// StartDailyBanSummary mails an aggregate of the day's bans shortly before
// midnight, then every interval after.
func StartDailyBanSummary(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		SendDailyBanSummary()
	}
}

func SendDailyBanSummary() {
	entries, err := rdb.LRange(ctx, DailyBanLogKey, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return
	}
	_ = rdb.Del(ctx, DailyBanLogKey).Err() // clear after reading

	var logs []BanLogEntry
	routeCounts := make(map[string]int)
	targetCounts := make(map[string]int)

	for _, item := range entries {
		var entry BanLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			logs = append(logs, entry)
			routeCounts[entry.Route]++
			targetCounts[entry.Target]++
		}
	}

	var sb strings.Builder
	sb.WriteString("<h2>Daily Ban Summary</h2>")
	sb.WriteString(fmt.Sprintf("<p>Total bans: <strong>%d</strong></p>", len(logs)))

	sb.WriteString("<h3>By Route</h3><ul>")
	for route, count := range routeCounts {
		sb.WriteString(fmt.Sprintf("<li><code>%s</code>: %d</li>", route, count))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>By Client</h3><ul>")
	for target, count := range targetCounts {
		sb.WriteString(fmt.Sprintf("<li>%s: %d</li>", target, count))
	}
	sb.WriteString("</ul>")

	subject := "Daily Ban Report"
	msg := strings.Join([]string{
		"From: " + cfg.AlertFrom,
		"To: " + cfg.AlertTo,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		sb.String(),
	}, "\r\n")

	sendMail(subject, []byte(msg))
}

func sendMail(subject string, msg []byte) {
	addr := fmt.Sprintf("%s:%s", cfg.SMTPServer, cfg.SMTPPort)
	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPServer)
	if cfg.SMTPAuthDisabled {
		auth = nil
	}

	go func() {
		if err := smtp.SendMail(addr, auth, cfg.AlertFrom, []string{cfg.AlertTo}, msg); err != nil {
			log.Printf("Failed to send %q email: %v", subject, err)
		}
	}()
}

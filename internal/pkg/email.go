package pkg

import (
	"crypto/tls"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string // 发件人邮箱
	Password string // 授权码/密码
	From     string // 显示的发件人，可与 Username 相同
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

// InviteCodeHTML 邀请码通知邮件正文
func InviteCodeHTML(stationName, code string, expiresAt *time.Time) string {
	if expiresAt == nil {
		return fmt.Sprintf(`<p>您好，</p><p>您被邀请加入 <b>%s</b>，邀请码：<b style="font-size:18px;">%s</b>。</p><p>请勿泄露给他人。</p>`, stationName, code)
	}
	return fmt.Sprintf(`<p>您好，</p><p>您被邀请加入 <b>%s</b>，邀请码：<b style="font-size:18px;">%s</b>。</p><p>有效期至 %s，请勿泄露给他人。</p>`, stationName, code, expiresAt.Format("2006-01-02 15:04"))
}

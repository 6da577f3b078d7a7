package notify

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/codeprnv/login-security/internal/auth/domain"
)

// EmailAlerter implements domain.Alerter over an EmailSender. The alert
// carries the risk reasons plus the two follow-up actions: confirm the login
// was legitimate (trust the device) or report fraud.
type EmailAlerter struct {
	sender      EmailSender
	frontendURL string
}

func NewEmailAlerter(sender EmailSender, frontendURL string) *EmailAlerter {
	return &EmailAlerter{sender: sender, frontendURL: strings.TrimRight(frontendURL, "/")}
}

func (a *EmailAlerter) SendSuspiciousLoginAlert(ctx context.Context, user *domain.User, ip string, device domain.DeviceInfo, loc *domain.Location, reasons []string) error {
	token, err := verificationToken()
	if err != nil {
		return err
	}

	query := url.Values{}
	query.Set("token", token)
	query.Set("email", user.Email)
	query.Set("ip", ip)

	trustLink := fmt.Sprintf("%s/security/trust-device?%s", a.frontendURL, query.Encode())
	fraudLink := fmt.Sprintf("%s/security/report-fraud?%s", a.frontendURL, query.Encode())

	city, country := "Unknown", "Unknown"
	if loc != nil {
		if loc.City != "" {
			city = loc.City
		}
		if loc.Country != "" {
			country = loc.Country
		}
	}

	var b strings.Builder
	b.WriteString("<html><body>")
	fmt.Fprintf(&b, "<h2>Suspicious login attempt</h2>")
	fmt.Fprintf(&b, "<p>Hi %s,</p>", html.EscapeString(user.Username))
	b.WriteString("<p>We detected a login on your account that does not match your usual activity.</p>")
	fmt.Fprintf(&b, "<p><strong>Location:</strong> %s, %s<br>", html.EscapeString(city), html.EscapeString(country))
	fmt.Fprintf(&b, "<strong>IP address:</strong> %s<br>", html.EscapeString(ip))
	fmt.Fprintf(&b, "<strong>Device:</strong> %s on %s<br>", html.EscapeString(device.Browser), html.EscapeString(device.OS))
	fmt.Fprintf(&b, "<strong>Time:</strong> %s</p>", time.Now().UTC().Format(time.RFC1123))
	b.WriteString("<p><strong>Why we flagged this:</strong></p><ul>")
	for _, reason := range reasons {
		fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(reason))
	}
	b.WriteString("</ul>")
	b.WriteString("<p><strong>Was this you?</strong></p>")
	fmt.Fprintf(&b, `<p><a href="%s">Yes, this was me</a> &nbsp; <a href="%s">No, report fraud</a></p>`, trustLink, fraudLink)
	b.WriteString("<p>Reporting fraud locks the account immediately and signs out every active session.</p>")
	b.WriteString("</body></html>")

	return a.sender.Send(ctx, &EmailMessage{
		To:      user.Email,
		Subject: "Suspicious login attempt detected",
		HTML:    b.String(),
	})
}

func verificationToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/demaceo/mhi/internal/config"
	"github.com/demaceo/mhi/internal/models"
)

const gmailSendURL = "https://gmail.googleapis.com/gmail/v1/users/me/messages/send"

// GmailSender delivers email through the Gmail REST API using an OAuth
// refresh token. Access tokens are minted lazily by the oauth2 token source
// and reused until expiry.
type GmailSender struct {
	from       string
	sendURL    string
	httpClient *http.Client
	now        func() time.Time
}

// NewGmailSender validates the OAuth credentials and builds the sender. All
// four values (client id, client secret, refresh token, sender address) must
// be present; a missing one is a configuration error, reported here rather
// than at send time.
func NewGmailSender(cfg *config.Config) (Sender, error) {
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRefreshToken == "" || cfg.GoogleEmail == "" {
		return nil, fmt.Errorf("%w: Gmail OAuth requires GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET, GOOGLE_REFRESH_TOKEN and GOOGLE_EMAIL", ErrNotConfigured)
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{"https://www.googleapis.com/auth/gmail.send"},
	}
	tokenSource := oauthCfg.TokenSource(context.Background(), &oauth2.Token{
		RefreshToken: cfg.GoogleRefreshToken,
	})

	return &GmailSender{
		from:       cfg.GoogleEmail,
		sendURL:    gmailSendURL,
		httpClient: oauth2.NewClient(context.Background(), tokenSource),
		now:        time.Now,
	}, nil
}

// Send builds the raw RFC 822 message and POSTs it to the Gmail send
// endpoint. Errors are wrapped without the underlying request details so
// credentials never leak into responses or logs.
func (s *GmailSender) Send(ctx context.Context, msg models.EmailMessage) error {
	raw := buildRawMessage(s.from, msg, s.now())

	payload, err := json.Marshal(map[string]string{
		"raw": base64.URLEncoding.EncodeToString(raw),
	})
	if err != nil {
		return fmt.Errorf("%w: failed to encode message: %v", ErrSendFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.sendURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrSendFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: gmail api request failed: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: gmail api returned status %d: %s", ErrSendFailed, resp.StatusCode, string(body))
	}
	return nil
}

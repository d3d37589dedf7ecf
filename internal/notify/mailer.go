package notify

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/Brendin-DP/IMD-accelerator-sub000/core/config"
)

// Invite is a request for an external reviewer to review a participant.
type Invite struct {
	To                      string `json:"to"`
	From                    string `json:"from"`
	Link                    string `json:"link"`
	Template                string `json:"template"`
	ParticipantAssessmentID int64  `json:"participant_assessment_id"`
	ExternalReviewerID      int64  `json:"external_reviewer_id"`
}

type Mailer interface {
	SendReviewerInvite(ctx context.Context, to string, inviteToken string, participantAssessmentID, externalReviewerID int64) error
}

type httpMailer struct {
	client        HTTPClient
	serviceURL    string
	from          string
	inviteBaseURL string
}

// NewMailer returns a mailer posting to the configured mail relay, or one that
// only logs when no relay is configured. A nil client gets a default one.
func NewMailer(cfg config.MailerConfig, client HTTPClient) Mailer {
	if !cfg.Enabled() {
		return logMailer{}
	}
	if client == nil {
		client = newHTTPClient(cfg.Timeout)
	}
	return &httpMailer{
		client:        client,
		serviceURL:    cfg.ServiceURL,
		from:          cfg.FromAddress,
		inviteBaseURL: cfg.InviteBaseURL,
	}
}

func (m *httpMailer) SendReviewerInvite(ctx context.Context, to string, inviteToken string, participantAssessmentID, externalReviewerID int64) error {
	invite := Invite{
		To:                      to,
		From:                    m.from,
		Link:                    inviteLink(m.inviteBaseURL, inviteToken),
		Template:                "reviewer_invite",
		ParticipantAssessmentID: participantAssessmentID,
		ExternalReviewerID:      externalReviewerID,
	}
	if err := postJSON(ctx, m.client, m.serviceURL, invite); err != nil {
		return err
	}

	slog.InfoContext(ctx, "reviewer invite sent",
		"external_reviewer_id", externalReviewerID,
		"participant_assessment_id", participantAssessmentID)
	return nil
}

func inviteLink(base, token string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base + "?token=" + url.QueryEscape(token)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}

type logMailer struct{}

func (logMailer) SendReviewerInvite(ctx context.Context, to string, _ string, participantAssessmentID, externalReviewerID int64) error {
	slog.InfoContext(ctx, "mail relay not configured, skipping reviewer invite",
		"external_reviewer_id", externalReviewerID,
		"participant_assessment_id", participantAssessmentID)
	return nil
}

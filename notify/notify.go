package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/twilio/twilio-go"
	Api "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/auto-trader/site/config"
	"github.com/auto-trader/site/lead"
)

// messageCreator is the slice of the Twilio API the notifier uses.
type messageCreator interface {
	CreateMessage(params *Api.CreateMessageParams) (*Api.ApiV2010Message, error)
}

// SMSNotifier texts the sales desk whenever the backend accepts a lead.
type SMSNotifier struct {
	api  messageCreator
	from string
	to   string
	log  *slog.Logger
}

// NewSMSNotifier returns nil, nil when lead alerts are not configured.
func NewSMSNotifier(cfg *config.Config, log *slog.Logger) (*SMSNotifier, error) {
	if !cfg.LeadAlertsEnabled() {
		return nil, nil
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})
	if client == nil {
		return nil, fmt.Errorf("failed to create Twilio client")
	}

	return &SMSNotifier{
		api:  client.Api,
		from: cfg.TwilioFromNumber,
		to:   cfg.LeadAlertNumber,
		log:  log,
	}, nil
}

// LeadReceived sends the alert. Only the listing and the presence of a phone
// number go into the text, never the buyer's contact details.
func (n *SMSNotifier) LeadReceived(_ context.Context, l lead.Lead) error {
	params := &Api.CreateMessageParams{}
	params.SetTo(n.to)
	params.SetFrom(n.from)
	params.SetBody(alertBody(l))

	if _, err := n.api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send lead alert: %w", err)
	}

	n.log.Info("lead alert sent", slog.String("car_id", l.CarID))
	return nil
}

func alertBody(l lead.Lead) string {
	callback := "no phone given"
	if l.Phone != "" {
		callback = "phone callback requested"
	}
	if l.CarID == config.DefaultCarID {
		return fmt.Sprintf("New %s lead from the site contact form (%s). Check the leads inbox.", config.SiteName, callback)
	}
	return fmt.Sprintf("New %s lead for listing %s (%s). Check the leads inbox.", config.SiteName, l.CarID, callback)
}

package intake

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/community-support-hub/server/internal/hub/model"
)

// SESAPI is the subset of the SES client used for delivery.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESDelivery emails the request to an intake mailbox.
type SESDelivery struct {
	client    SESAPI
	sender    string
	recipient string
}

func NewSESDelivery(client SESAPI, sender, recipient string) *SESDelivery {
	return &SESDelivery{client: client, sender: sender, recipient: recipient}
}

// NewSESDeliveryFromConfig loads default AWS credentials for region.
func NewSESDeliveryFromConfig(ctx context.Context, region, sender, recipient string) (*SESDelivery, error) {
	if sender == "" || recipient == "" {
		return nil, fmt.Errorf("ses delivery needs a sender and a recipient")
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewSESDelivery(ses.NewFromConfig(cfg), sender, recipient), nil
}

func (d *SESDelivery) Deliver(ctx context.Context, id string, req model.HelpRequest) error {
	subject := fmt.Sprintf("Help request %s: %s (%s)", id, req.SupportType, req.Urgency)
	_, err := d.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(d.sender),
		Destination: &types.Destination{
			ToAddresses: []string{d.recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(emailBody(id, req))},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send help request email: %w", err)
	}
	return nil
}

func emailBody(id string, req model.HelpRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Request ID: %s\n", id)
	fmt.Fprintf(&b, "Type of support: %s\n", req.SupportType)
	fmt.Fprintf(&b, "Location: %s\n", req.Location)
	fmt.Fprintf(&b, "Urgency: %s\n", req.Urgency)
	if req.Contact != "" {
		fmt.Fprintf(&b, "Contact: %s\n", req.Contact)
	} else {
		b.WriteString("Contact: none given (anonymous)\n")
	}
	if req.Situation != "" {
		fmt.Fprintf(&b, "\nSituation:\n%s\n", req.Situation)
	}
	return b.String()
}

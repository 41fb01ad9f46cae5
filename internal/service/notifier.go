package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lic-events/vbs-api/internal/domain"
)

type SMSSender interface {
	Send(ctx context.Context, phoneNumber, message string) error
}

// Notifier formats the guardian-facing messages and hands them to the SMS
// transport. Sends run on their own goroutine so the check-in and pickup
// workflows never block on the provider; failures are logged and swallowed.
// The ledger write is the system of record, the SMS is a convenience.
type Notifier struct {
	sender         SMSSender
	adminContactNo string
	sendTimeout    time.Duration
}

func NewNotifier(sender SMSSender, adminContactNo string) *Notifier {
	return &Notifier{
		sender:         sender,
		adminContactNo: adminContactNo,
		sendTimeout:    15 * time.Second,
	}
}

func (n *Notifier) NotifyCheckIn(participant domain.Participant, day domain.EventDay, code int) {
	message := fmt.Sprintf(
		"Dear VBS Parent/Guardian,\n"+
			"%v has been marked as present for VBS %v. "+
			"Your pickup code for this participant is %v for VBS %v. "+
			"Please keep this code handy when picking up your ward because it will be required to confirm pickup rights.",
		participant.FullName(), day.Label(), code, day.Label(),
	)

	n.dispatch("check-in", participant, message)
}

func (n *Notifier) NotifyPickup(participant domain.Participant, day domain.EventDay, pickupPerson string) {
	message := fmt.Sprintf(
		"Dear VBS Parent/Guardian,\n"+
			"%v has been picked up from the LIC premises for VBS %v by %v. "+
			"Please contact LIC VBS Admin on %v immediately if this is unexpected "+
			"or you have any questions or concerns.",
		participant.FullName(), day.Label(), pickupPerson, n.adminContactNo,
	)

	n.dispatch("pickup", participant, message)
}

func (n *Notifier) dispatch(kind string, participant domain.Participant, message string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), n.sendTimeout)
		defer cancel()

		if err := n.sender.Send(ctx, participant.PrimaryContactNo, message); err != nil {
			zap.L().Error("failed to send SMS",
				zap.String("kind", kind),
				zap.Uint("participant_id", participant.ID),
				zap.Error(err),
			)
		}
	}()
}

package mailer

import "context"

// Mailer sends game notifications. A mail failure never invalidates a
// recorded win; callers log errors and move on.
type Mailer interface {
	// SendWinnerNotice notifies the player of their prize
	SendWinnerNotice(ctx context.Context, email, name, prizeName string) error

	// SendInternalNotice notifies the campaign owners of a win
	SendInternalNotice(ctx context.Context, identifier, name, prizeName, email string) error
}

// Package notifier delivers milestone notifications. Push delivery is not implemented:
// LogNotifier records the decision in the structured log.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/limbo/weightgoal/pkg/entity"
	"github.com/limbo/weightgoal/pkg/logger"
)

var ErrUnknownMilestone = errors.New("unknown milestone type")

type LogNotifier struct {
	log *slog.Logger
}

// New creates notifier writing to l, or to the request logger found in context when l is nil.
func New(l *slog.Logger) *LogNotifier {
	return &LogNotifier{log: l}
}

func (n *LogNotifier) Notify(ctx context.Context, a entity.MilestoneAchievement) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	text, err := Message(a)
	if err != nil {
		return err
	}
	l := n.log
	if l == nil {
		l = logger.FromContext(ctx)
	}
	l.Info("milestone notification scheduled",
		slog.String("uid", a.UserID.String()),
		slog.String("achievement_id", a.ID.String()),
		slog.String("milestone", string(a.Type)),
		slog.String("text", text),
	)
	return nil
}

// Message renders the user-facing text of an achievement.
func Message(a entity.MilestoneAchievement) (string, error) {
	remaining := a.WeightAtAchievement - a.GoalWeight
	if remaining < 0 {
		remaining = -remaining
	}
	switch a.Type {
	case entity.MilestoneApproaching:
		return fmt.Sprintf("Almost there! Only %.1f %s to your goal of %.1f %s.", remaining, a.Unit, a.GoalWeight, a.Unit), nil
	case entity.MilestoneQuarter:
		return fmt.Sprintf("A quarter of the way to %.1f %s. Keep going!", a.GoalWeight, a.Unit), nil
	case entity.MilestoneHalf:
		return fmt.Sprintf("Halfway to %.1f %s!", a.GoalWeight, a.Unit), nil
	case entity.MilestoneThreeQuarter:
		return fmt.Sprintf("75%% done, %.1f %s left to %.1f %s.", remaining, a.Unit, a.GoalWeight, a.Unit), nil
	case entity.MilestoneComplete:
		return fmt.Sprintf("Goal reached: %.1f %s!", a.GoalWeight, a.Unit), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMilestone, a.Type)
}

package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/boplan/boplan-backend/internal/calculation"
	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/boplan/boplan-backend/internal/websocket"
)

// DefaultRecalcDebounce is how long the notifier waits after the last edit
// before recalculating. Profile edits arrive in bursts while the user types;
// only the final state is worth a broadcast.
const DefaultRecalcDebounce = 300 * time.Millisecond

// RecalcPayload is the payload of a budget.recalculated event
type RecalcPayload struct {
	ProfileID uuid.UUID                 `json:"profileId"`
	Result    *domain.CalculationResult `json:"result"`
}

// RecalcNotifier recalculates a profile's budget after edits and pushes the
// result to the owner's WebSocket clients, debounced per profile.
type RecalcNotifier struct {
	engine    *calculation.Engine
	publisher websocket.EventPublisher
	delay     time.Duration

	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
}

// NewRecalcNotifier creates a notifier with the default debounce delay
func NewRecalcNotifier(engine *calculation.Engine, publisher websocket.EventPublisher) *RecalcNotifier {
	return NewRecalcNotifierWithDelay(engine, publisher, DefaultRecalcDebounce)
}

// NewRecalcNotifierWithDelay creates a notifier with an explicit debounce delay
func NewRecalcNotifierWithDelay(engine *calculation.Engine, publisher websocket.EventPublisher, delay time.Duration) *RecalcNotifier {
	return &RecalcNotifier{
		engine:    engine,
		publisher: publisher,
		delay:     delay,
		timers:    make(map[uuid.UUID]*time.Timer),
	}
}

// Trigger schedules a recalculation for the profile. A later Trigger for the
// same profile within the debounce window replaces the pending one.
func (n *RecalcNotifier) Trigger(userID uuid.UUID, profile *domain.Profile) {
	profileID := profile.ID
	input := profile.Input

	n.mu.Lock()
	defer n.mu.Unlock()

	if timer, ok := n.timers[profileID]; ok {
		timer.Stop()
	}

	n.timers[profileID] = time.AfterFunc(n.delay, func() {
		n.mu.Lock()
		delete(n.timers, profileID)
		n.mu.Unlock()

		n.recalculate(userID, profileID, input)
	})
}

// Cancel drops any pending recalculation for the profile, e.g. after delete.
func (n *RecalcNotifier) Cancel(profileID uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if timer, ok := n.timers[profileID]; ok {
		timer.Stop()
		delete(n.timers, profileID)
	}
}

// Stop cancels all pending recalculations
func (n *RecalcNotifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for id, timer := range n.timers {
		timer.Stop()
		delete(n.timers, id)
	}
}

func (n *RecalcNotifier) recalculate(userID, profileID uuid.UUID, input domain.CalculationInput) {
	result, err := n.engine.Calculate(input)
	if err != nil {
		// Incomplete input is normal mid-edit; nothing to broadcast
		if err != domain.ErrInsufficientData {
			log.Error().
				Err(err).
				Str("profile_id", profileID.String()).
				Msg("Recalculation failed")
		}
		return
	}

	n.publisher.Publish(userID, websocket.BudgetRecalculated(RecalcPayload{
		ProfileID: profileID,
		Result:    result,
	}))
}

package changefeed

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-service/internal/config"
	"github.com/s21platform/chat-service/internal/model"
)

type Handle struct {
	dispatcher Dispatcher
}

func New(dispatcher Dispatcher) *Handle {
	return &Handle{dispatcher: dispatcher}
}

// Handler routes row-level storage changes into the open conversation views.
// Events for tables nobody renders are dropped by the dispatcher itself.
func (h *Handle) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Handler")

	var event model.ChangeEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal change event: %v", err))
		return
	}

	h.dispatcher.Dispatch(ctx, event)
}

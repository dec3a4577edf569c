package model

import "errors"

// ErrConversationExists signals that the uniqueness constraint over the
// participant pair fired on insert. Callers recover by fetching the
// concurrently created row instead of failing.
var ErrConversationExists = errors.New("conversation already exists")

package reconciler

import "errors"

// ErrReconcile is returned when single listing couldn't be reconciled with storage.
var ErrReconcile = errors.New("can't reconcile listing")

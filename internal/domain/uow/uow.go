package uow

import "context"

// Runner runs a function inside one unit of work. Every repository write
// performed with the ctx passed to fn joins the same transaction; if fn
// returns an error the whole unit rolls back and no partial state remains.
//
// The bill orchestrator and the payment allocator share a single Runner call
// so a bill, its line items, its stock adjustments and any payment sweep
// commit or vanish together.
type Runner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

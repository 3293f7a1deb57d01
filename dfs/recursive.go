package dfs

import (
	"fmt"
	"math/bits"
	"runtime/debug"
	"sync"

	"golang.org/x/sync/errgroup"
)

// stackMu serializes changes to the process-wide maximum stack size.
var stackMu sync.Mutex

// runRecursive executes the recursive strategy on its own goroutine.
//
// Steps:
//  1. Refuse up front if a recursion V frames deep cannot fit the budget.
//  2. Raise the process maximum stack to the budget if it is lower.
//  3. Run the recursion on a fresh goroutine and wait for it.
//  4. Restore the previous maximum.
func (l *labeler) runRecursive() error {
	// 1. Worst case the recursion is as deep as the vertex count
	n := l.graph.VertexCount()
	budget := l.opts.StackBudget
	if need := stackNeed(n); need > budget {
		return fmt.Errorf("%w: %d vertices need up to %d bytes, budget %d",
			ErrStackBudgetExceeded, n, need, budget)
	}

	// 2. Only ever raise the limit
	stackMu.Lock()
	defer stackMu.Unlock()
	prev := debug.SetMaxStack(budget)
	if prev > budget {
		debug.SetMaxStack(prev)
	} else {
		defer debug.SetMaxStack(prev)
	}

	// 3. A new goroutine starts with a small stack that grows up to the max
	var eg errgroup.Group
	eg.Go(func() error {
		for root := 0; root < n; root++ {
			if l.visited.Bit(root) == 1 {
				continue
			}
			if err := l.visit(root); err != nil {
				return err
			}
		}
		return nil
	})

	return eg.Wait()
}

// stackNeed is the size a goroutine stack reaches for a recursion depth
// frames deep. Stacks grow by doubling and the runtime aborts the process
// when a doubled stack would pass the maximum, so the estimate is rounded
// up to a power of two.
func stackNeed(depth int) int {
	need := depth*frameBytes + stackSlack

	return 1 << bits.Len(uint(need-1))
}

// visit is the textbook recursive DFS: mark, recurse into unvisited
// children in ascending order, then finish.
func (l *labeler) visit(v int) error {
	select {
	case <-l.opts.Ctx.Done():
		return l.opts.Ctx.Err()
	default:
	}

	l.visited.SetBit(v, 1)
	for _, a := range l.graph.ArcsAt(v) {
		if l.visited.Bit(a.To) == 1 {
			continue
		}
		if err := l.visit(a.To); err != nil {
			return err
		}
	}
	l.finish(v)

	return nil
}

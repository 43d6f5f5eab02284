package flow

// Step is one stage of a chain. It returns the signal the chain waits on
// before running the next stage; nil means the stage completed synchronously.
type Step func() *Signal

// Chain is a sequence of steps executed across frames.
type Chain struct {
	token   Token
	steps   []Step
	waiting *Signal
	done    *Signal
}

// Done returns a signal that fires after the last step completes.
// It never fires for a cancelled chain.
func (c *Chain) Done() *Signal {
	return c.done
}

// advance runs steps until one blocks. It returns false once the chain is
// finished or cancelled.
func (c *Chain) advance() bool {
	for {
		if c.token.Cancelled() {
			return false
		}
		if c.waiting != nil {
			if !c.waiting.Fired() {
				return true
			}
			c.waiting = nil
		}
		if len(c.steps) == 0 {
			c.done.Fire()
			return false
		}
		step := c.steps[0]
		c.steps = c.steps[1:]
		c.waiting = step()
	}
}

// Runner polls chains once per frame. It is not safe for concurrent use.
type Runner struct {
	chains []*Chain
}

// Go starts a chain bound to tok. The first step runs synchronously, so a
// chain whose steps never block completes before Go returns.
func (r *Runner) Go(tok Token, steps ...Step) *Chain {
	c := &Chain{token: tok, steps: steps, done: NewSignal()}
	if c.advance() {
		r.chains = append(r.chains, c)
	}
	return c
}

// Advance resumes every chain whose pending signal fired and drops finished
// or cancelled chains. Chains started while advancing are polled too.
func (r *Runner) Advance() {
	var keep []*Chain
	pending := r.chains
	r.chains = nil
	for len(pending) > 0 {
		for _, c := range pending {
			if c.advance() {
				keep = append(keep, c)
			}
		}
		pending = r.chains
		r.chains = nil
	}
	r.chains = keep
}

// Len returns the number of chains still in flight.
func (r *Runner) Len() int {
	return len(r.chains)
}

// Clear drops every chain.
func (r *Runner) Clear() {
	r.chains = nil
}

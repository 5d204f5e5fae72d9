package blit

// InjectKey queues a synthetic key event. It is appended to the key queue at
// the next tick's sample step, after any events from the keyboard device.
func (p *Pipeline) InjectKey(ev KeyEvent) {
	p.injectKeys = append(p.injectKeys, ev)
}

// InjectText queues one printable key event per rune of s.
func (p *Pipeline) InjectText(s string) {
	for _, r := range s {
		p.InjectKey(Char(r))
	}
}

// InjectPointer queues a synthetic pointer sample for the next tick.
func (p *Pipeline) InjectPointer(s PointerState) {
	p.injectPointers = append(p.injectPointers, s)
}

// pendingInjections reports how many synthetic events are still queued.
func (p *Pipeline) pendingInjections() int {
	return len(p.injectKeys) + len(p.injectPointers)
}

// processInjectedInput moves every injected key event and at most one
// injected pointer sample into the queues. Pointer samples are spread over
// ticks the way a real device delivers them.
func (p *Pipeline) processInjectedInput() {
	for _, ev := range p.injectKeys {
		p.keys.Push(ev)
	}
	p.injectKeys = p.injectKeys[:0]

	if len(p.injectPointers) == 0 {
		return
	}
	p.pointers.Push(p.injectPointers[0])
	copy(p.injectPointers, p.injectPointers[1:])
	p.injectPointers = p.injectPointers[:len(p.injectPointers)-1]
}

package hwio

// Watch is a Bus decorator that reports every access made through it to the
// optional callbacks, after the underlying bus has served it. Word accesses
// are reported as two byte accesses. Peeks are not reported.
type Watch struct {
	Bus Bus

	ReadCb  func(addr uint16, val uint8)
	WriteCb func(addr uint16, val uint8)
}

func (w *Watch) Read8(addr uint16) uint8 {
	val := w.Bus.Read8(addr)
	if w.ReadCb != nil {
		w.ReadCb(addr, val)
	}
	return val
}

func (w *Watch) Peek8(addr uint16) uint8 {
	return w.Bus.Peek8(addr)
}

func (w *Watch) Write8(addr uint16, val uint8) {
	w.Bus.Write8(addr, val)
	if w.WriteCb != nil {
		w.WriteCb(addr, val)
	}
}

func (w *Watch) Read16(addr uint16) uint16 {
	return Read16(w, addr)
}

func (w *Watch) Write16(addr uint16, val uint16) {
	Write16(w, addr, val)
}

package canmsg

// Filter decides whether a message should be delivered to a subscriber.
type Filter func(Message) bool

// ByID matches messages whose identifier Equals id, regardless of width.
func ByID(id ID) Filter {
	return func(m Message) bool { return m.id.Equal(id) }
}

// ByIDs matches any of the provided identifiers by widened value.
func ByIDs(ids ...ID) Filter {
	set := make(map[uint32]struct{}, len(ids))
	for _, id := range ids {
		set[id.Widen()] = struct{}{}
	}
	return func(m Message) bool {
		_, ok := set[m.id.Widen()]
		return ok
	}
}

// ByRange matches identifiers within [lo, hi], inclusive.
func ByRange(lo, hi ID) Filter {
	if hi.Compare(lo) < 0 {
		lo, hi = hi, lo
	}
	return func(m Message) bool { return m.id.Compare(lo) >= 0 && m.id.Compare(hi) <= 0 }
}

// ByMask matches when (id & mask) == (want & mask) on widened values.
func ByMask(want, mask uint32) Filter {
	want &= mask
	return func(m Message) bool { return m.id.Widen()&mask == want }
}

// ShortOnly matches short (11-bit) identifiers.
func ShortOnly() Filter {
	return func(m Message) bool { return !m.id.IsExtended() }
}

// ExtendedOnly matches extended (29-bit) identifiers.
func ExtendedOnly() Filter {
	return func(m Message) bool { return m.id.IsExtended() }
}

// LenAtMost matches messages with at most n payload bytes.
func LenAtMost(n uint8) Filter {
	return func(m Message) bool { return m.length <= n }
}

// LenExactly matches messages with exactly n payload bytes.
func LenExactly(n uint8) Filter {
	return func(m Message) bool { return m.length == n }
}

// And composes two filters; the result matches when both match.
func And(a, b Filter) Filter {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return func(m Message) bool { return a(m) && b(m) }
	}
}

// Or composes two filters; the result matches when either matches.
func Or(a, b Filter) Filter {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return func(m Message) bool { return a(m) || b(m) }
	}
}

// Not inverts a filter. Not(nil) matches nothing.
func Not(a Filter) Filter {
	if a == nil {
		return func(Message) bool { return false }
	}
	return func(m Message) bool { return !a(m) }
}

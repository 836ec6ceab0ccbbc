package ttable

// Bound describes which side(s) of the true score a stored value brackets.
// A fail-low search yields an upper bound, a fail-high a lower bound.
// An exact score is simply both flags at once, which is what lets update
// degrade it into two independent open bounds without a special case.
type Bound uint8

const (
	BoundNone  Bound = 0
	BoundUpper Bound = 1
	BoundLower Bound = 2
	BoundExact Bound = BoundUpper | BoundLower
)

// Move is the engine's 16-bit move encoding. The table never inspects it.
type Move uint16

// MoveNone marks a slot with no best move recorded.
const MoveNone Move = 0

// Internal sentinels for a bound that is not set. They never escape the
// accessors; callers see the comma-ok form instead. depthNone sorts below
// any real depth so a bound-less entry loses every eviction tie-break.
const (
	scoreNone int16 = -32768
	depthNone int16 = -32768
)

// Entry is one remembered search outcome. It packs into 16 bytes so that
// four of them fill one cache line (see cluster).
//
// An Entry holds up to two independently valid bounds for the same
// truncated key. The bound flags are the single source of truth for
// validity; value/depth fields of an unset bound hold sentinels.
type Entry struct {
	// 8 bytes of identity and bookkeeping.
	key32  uint32
	move16 uint16
	bound  Bound
	gen8   uint8

	// 8 bytes of bound data, one score/depth pair per side.
	lowerValue int16
	lowerDepth int16
	upperValue int16
	upperDepth int16
}

// save claims the slot for a (possibly different) position: every field is
// overwritten and whichever bounds the caller did not supply are cleared.
func (e *Entry) save(key uint32, value int16, b Bound, depth int16, move Move, gen uint8) {
	e.key32 = key
	e.move16 = uint16(move)
	e.bound = b
	e.gen8 = gen

	if b&BoundUpper != 0 {
		e.upperValue, e.upperDepth = value, depth
	} else {
		e.upperValue, e.upperDepth = scoreNone, depthNone
	}

	if b&BoundLower != 0 {
		e.lowerValue, e.lowerDepth = value, depth
	} else {
		e.lowerValue, e.lowerDepth = scoreNone, depthNone
	}
}

// update merges a new result into a record already holding the same key.
//
// The move and generation always take the newest value, even when the bound
// data below is partially rejected. Each supplied bound overwrites its side
// unconditionally; if that leaves the opposite side claiming a value outside
// the new bracket, the opposite side is contradicted and dropped. The flags
// end up as the union of what survived and what came in, so the entry never
// advertises lower > upper.
func (e *Entry) update(value int16, b Bound, depth int16, move Move, gen uint8) {
	e.move16 = uint16(move)
	e.gen8 = gen

	if b&BoundUpper != 0 {
		e.upperValue, e.upperDepth = value, depth

		if e.bound&BoundLower != 0 && e.lowerValue > value {
			e.bound &^= BoundLower
			e.lowerValue, e.lowerDepth = scoreNone, depthNone
		}
	}

	if b&BoundLower != 0 {
		e.lowerValue, e.lowerDepth = value, depth

		if e.bound&BoundUpper != 0 && e.upperValue < value {
			e.bound &^= BoundUpper
			e.upperValue, e.upperDepth = scoreNone, depthNone
		}
	}

	e.bound |= b
}

// Key returns the truncated position fingerprint stored in the slot.
// Callers must compare it against their own key before trusting anything
// else in the record; see the Table concurrency contract.
func (e *Entry) Key() uint32 { return e.key32 }

// Move returns the best move recorded for the position, or MoveNone.
func (e *Entry) Move() Move { return Move(e.move16) }

// Bound returns the currently valid bound flags.
func (e *Entry) Bound() Bound { return e.bound }

// Generation returns the search epoch the entry was last written or
// refreshed in.
func (e *Entry) Generation() uint8 { return e.gen8 }

// Lower returns the fail-high bound: the true score is known to be at least
// value, proven at the given depth. ok is false if no lower bound is set.
func (e *Entry) Lower() (value, depth int16, ok bool) {
	if e.bound&BoundLower == 0 {
		return 0, 0, false
	}
	return e.lowerValue, e.lowerDepth, true
}

// Upper returns the fail-low bound: the true score is known to be at most
// value. ok is false if no upper bound is set.
func (e *Entry) Upper() (value, depth int16, ok bool) {
	if e.bound&BoundUpper == 0 {
		return 0, 0, false
	}
	return e.upperValue, e.upperDepth, true
}

// depth ranks the entry for replacement: the deeper of the two stored
// bounds, or depthNone when the entry carries no bound at all.
func (e *Entry) depth() int16 {
	d := depthNone
	if e.bound&BoundLower != 0 && e.lowerDepth > d {
		d = e.lowerDepth
	}
	if e.bound&BoundUpper != 0 && e.upperDepth > d {
		d = e.upperDepth
	}
	return d
}

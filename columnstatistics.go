package orc

import (
	"time"

	"github.com/Sullivan-Patrick/orc/orcproto"
)

// ColumnStatistics accumulates per-column statistics across the rows a
// column writer has seen, emitted into the stripe footer and file footer
// the way addStatsRecursive walks each TreeWriter's statistics in the
// original writer.
type ColumnStatistics interface {
	Add(value interface{})
	AddNull()
	Merge(other ColumnStatistics)
	Reset()
	Statistics() *orcproto.ColumnStatistics
}

// NewColumnStatistics returns the statistics accumulator appropriate for
// category, matching the original writer's per-TreeWriter statistics type.
func NewColumnStatistics(category Category) ColumnStatistics {
	switch category {
	case CategoryShort, CategoryInt, CategoryLong:
		return NewIntegerColumnStatistics()
	case CategoryFloat, CategoryDouble:
		return NewDoubleColumnStatistics()
	case CategoryString, CategoryVarchar, CategoryChar:
		return NewStringColumnStatistics()
	case CategoryBoolean:
		return NewBooleanColumnStatistics()
	case CategoryBinary:
		return NewBinaryColumnStatistics()
	case CategoryDecimal:
		return NewDecimalColumnStatistics()
	case CategoryDate:
		return NewDateColumnStatistics()
	case CategoryTimestamp:
		return NewTimestampColumnStatistics()
	default:
		return NewBaseStatistics()
	}
}

type baseStatistics struct {
	numberOfValues uint64
	hasNull        bool
	rawSize        uint64
}

func (b *baseStatistics) addBase(value interface{}, rawSize uint64) {
	if value == nil {
		b.hasNull = true
		return
	}
	b.numberOfValues++
	b.rawSize += rawSize
}

func (b *baseStatistics) mergeBase(other *baseStatistics) {
	b.numberOfValues += other.numberOfValues
	b.rawSize += other.rawSize
	b.hasNull = b.hasNull || other.hasNull
}

func (b *baseStatistics) fill(out *orcproto.ColumnStatistics) {
	n := b.numberOfValues
	out.NumberOfValues = &n
	if b.hasNull {
		hn := true
		out.HasNull = &hn
	}
	rs := b.rawSize
	out.RawSize = &rs
}

// BaseStatistics is the fallback accumulator for categories with no
// type-specific min/max/sum tracking (byte, struct, list, map, union).
type BaseStatistics struct {
	baseStatistics
}

func NewBaseStatistics() *BaseStatistics { return &BaseStatistics{} }

func (b *BaseStatistics) Add(value interface{}) { b.addBase(value, 0) }
func (b *BaseStatistics) AddNull()               { b.hasNull = true }
func (b *BaseStatistics) Reset()                 { *b = BaseStatistics{} }
func (b *BaseStatistics) Merge(other ColumnStatistics) {
	if o, ok := other.(*BaseStatistics); ok {
		b.mergeBase(&o.baseStatistics)
	}
}
func (b *BaseStatistics) Statistics() *orcproto.ColumnStatistics {
	out := &orcproto.ColumnStatistics{}
	b.fill(out)
	return out
}

// IntegerStatistics tracks minimum/maximum/sum for short/int/long columns.
type IntegerStatistics struct {
	baseStatistics
	minimum int64
	maximum int64
	sum     int64
	minSet  bool
}

func NewIntegerColumnStatistics() *IntegerStatistics { return &IntegerStatistics{} }

func (i *IntegerStatistics) Add(value interface{}) {
	v, ok := value.(int64)
	if !ok {
		return
	}
	i.addBase(value, 8)
	if !i.minSet || v < i.minimum {
		i.minimum = v
		i.minSet = true
	}
	if v > i.maximum || i.numberOfValues == 1 {
		i.maximum = v
	}
	i.sum += v
}

func (i *IntegerStatistics) AddNull() { i.hasNull = true }
func (i *IntegerStatistics) Reset()   { *i = IntegerStatistics{} }

func (i *IntegerStatistics) Merge(other ColumnStatistics) {
	o, ok := other.(*IntegerStatistics)
	if !ok {
		return
	}
	if !i.minSet || o.minimum < i.minimum {
		i.minimum = o.minimum
	}
	if o.maximum > i.maximum {
		i.maximum = o.maximum
	}
	i.sum += o.sum
	i.minSet = i.minSet || o.minSet
	i.mergeBase(&o.baseStatistics)
}

func (i *IntegerStatistics) Statistics() *orcproto.ColumnStatistics {
	out := &orcproto.ColumnStatistics{}
	i.fill(out)
	min, max, sum := i.minimum, i.maximum, i.sum
	out.IntStatistics = &orcproto.IntegerStatistics{Minimum: &min, Maximum: &max, Sum: &sum}
	return out
}

// DoubleStatistics tracks minimum/maximum/sum for float/double columns.
type DoubleStatistics struct {
	baseStatistics
	minimum float64
	maximum float64
	sum     float64
	minSet  bool
}

func NewDoubleColumnStatistics() *DoubleStatistics { return &DoubleStatistics{} }

func (d *DoubleStatistics) Add(value interface{}) {
	var v float64
	switch t := value.(type) {
	case float64:
		v = t
	case float32:
		v = float64(t)
	default:
		return
	}
	d.addBase(value, 8)
	if !d.minSet || v < d.minimum {
		d.minimum = v
		d.minSet = true
	}
	if v > d.maximum || d.numberOfValues == 1 {
		d.maximum = v
	}
	d.sum += v
}

func (d *DoubleStatistics) AddNull() { d.hasNull = true }
func (d *DoubleStatistics) Reset()   { *d = DoubleStatistics{} }

func (d *DoubleStatistics) Merge(other ColumnStatistics) {
	o, ok := other.(*DoubleStatistics)
	if !ok {
		return
	}
	if !d.minSet || o.minimum < d.minimum {
		d.minimum = o.minimum
	}
	if o.maximum > d.maximum {
		d.maximum = o.maximum
	}
	d.sum += o.sum
	d.minSet = d.minSet || o.minSet
	d.mergeBase(&o.baseStatistics)
}

func (d *DoubleStatistics) Statistics() *orcproto.ColumnStatistics {
	out := &orcproto.ColumnStatistics{}
	d.fill(out)
	min, max, sum := d.minimum, d.maximum, d.sum
	out.DoubleStatistics = &orcproto.DoubleStatistics{Minimum: &min, Maximum: &max, Sum: &sum}
	return out
}

// StringStatistics tracks minimum/maximum (lexical) and total length for
// string/varchar/char columns.
type StringStatistics struct {
	baseStatistics
	minimum string
	maximum string
	sum     int64
	minSet  bool
}

func NewStringColumnStatistics() *StringStatistics { return &StringStatistics{} }

func (s *StringStatistics) Add(value interface{}) {
	v, ok := value.(string)
	if !ok {
		return
	}
	s.addBase(value, uint64(len(v)))
	if !s.minSet || v < s.minimum {
		s.minimum = v
		s.minSet = true
	}
	if v > s.maximum || s.numberOfValues == 1 {
		s.maximum = v
	}
	s.sum += int64(len(v))
}

func (s *StringStatistics) AddNull() { s.hasNull = true }
func (s *StringStatistics) Reset()   { *s = StringStatistics{} }

func (s *StringStatistics) Merge(other ColumnStatistics) {
	o, ok := other.(*StringStatistics)
	if !ok {
		return
	}
	if !s.minSet || o.minimum < s.minimum {
		s.minimum = o.minimum
	}
	if o.maximum > s.maximum {
		s.maximum = o.maximum
	}
	s.sum += o.sum
	s.minSet = s.minSet || o.minSet
	s.mergeBase(&o.baseStatistics)
}

func (s *StringStatistics) Statistics() *orcproto.ColumnStatistics {
	out := &orcproto.ColumnStatistics{}
	s.fill(out)
	min, max, sum := s.minimum, s.maximum, s.sum
	out.StringStatistics = &orcproto.StringStatistics{Minimum: &min, Maximum: &max, Sum: &sum}
	return out
}

// BooleanStatistics counts true values via the wire's BucketStatistics
// vector, matching how ORC packs a single true-count into bucket index 0.
type BooleanStatistics struct {
	baseStatistics
	trueCount int64
}

func NewBooleanColumnStatistics() *BooleanStatistics { return &BooleanStatistics{} }

func (b *BooleanStatistics) Add(value interface{}) {
	v, ok := value.(bool)
	if !ok {
		return
	}
	b.addBase(value, 1)
	if v {
		b.trueCount++
	}
}

func (b *BooleanStatistics) AddNull() { b.hasNull = true }
func (b *BooleanStatistics) Reset()   { *b = BooleanStatistics{} }

func (b *BooleanStatistics) Merge(other ColumnStatistics) {
	o, ok := other.(*BooleanStatistics)
	if !ok {
		return
	}
	b.trueCount += o.trueCount
	b.mergeBase(&o.baseStatistics)
}

func (b *BooleanStatistics) Statistics() *orcproto.ColumnStatistics {
	out := &orcproto.ColumnStatistics{}
	b.fill(out)
	out.BucketStatistics = &orcproto.BucketStatistics{Count: []uint64{uint64(b.trueCount)}}
	return out
}

// BinaryStatistics tracks the total byte length of a binary column.
type BinaryStatistics struct {
	baseStatistics
	sum int64
}

func NewBinaryColumnStatistics() *BinaryStatistics { return &BinaryStatistics{} }

func (b *BinaryStatistics) Add(value interface{}) {
	v, ok := value.([]byte)
	if !ok {
		return
	}
	b.addBase(value, uint64(len(v)))
	b.sum += int64(len(v))
}

func (b *BinaryStatistics) AddNull() { b.hasNull = true }
func (b *BinaryStatistics) Reset()   { *b = BinaryStatistics{} }

func (b *BinaryStatistics) Merge(other ColumnStatistics) {
	o, ok := other.(*BinaryStatistics)
	if !ok {
		return
	}
	b.sum += o.sum
	b.mergeBase(&o.baseStatistics)
}

func (b *BinaryStatistics) Statistics() *orcproto.ColumnStatistics {
	out := &orcproto.ColumnStatistics{}
	b.fill(out)
	sum := b.sum
	out.BinaryStatistics = &orcproto.BinaryStatistics{Sum: &sum}
	return out
}

// DecimalStatistics tracks minimum/maximum/sum for decimal columns via
// their string representation, matching the wire format's string-encoded
// decimal statistics.
type DecimalStatistics struct {
	baseStatistics
	minimum string
	maximum string
	sum     float64
	minSet  bool
}

func NewDecimalColumnStatistics() *DecimalStatistics { return &DecimalStatistics{} }

func (d *DecimalStatistics) Add(value interface{}) {
	v, ok := value.(Decimal)
	if !ok {
		return
	}
	d.addBase(value, 16)
	f := v.Float64()
	s := v.Abs.String()
	if !d.minSet || f < d.sum {
		d.minimum = s
		d.minSet = true
	}
	d.maximum = s
	d.sum += f
}

func (d *DecimalStatistics) AddNull() { d.hasNull = true }
func (d *DecimalStatistics) Reset()   { *d = DecimalStatistics{} }

func (d *DecimalStatistics) Merge(other ColumnStatistics) {
	o, ok := other.(*DecimalStatistics)
	if !ok {
		return
	}
	d.sum += o.sum
	if o.maximum != "" {
		d.maximum = o.maximum
	}
	if !d.minSet && o.minSet {
		d.minimum = o.minimum
		d.minSet = true
	}
	d.mergeBase(&o.baseStatistics)
}

func (d *DecimalStatistics) Statistics() *orcproto.ColumnStatistics {
	out := &orcproto.ColumnStatistics{}
	d.fill(out)
	min, max := d.minimum, d.maximum
	out.DecimalStatistics = &orcproto.DecimalStatistics{Minimum: &min, Maximum: &max}
	return out
}

// DateStatistics tracks minimum/maximum day-offset-from-epoch for date
// columns, matching the wire format's zigzag32 day encoding.
type DateStatistics struct {
	baseStatistics
	minimum int32
	maximum int32
	minSet  bool
}

func NewDateColumnStatistics() *DateStatistics { return &DateStatistics{} }

func (d *DateStatistics) Add(value interface{}) {
	t, ok := value.(time.Time)
	if !ok {
		return
	}
	days := int32(t.Unix() / 86400)
	d.addBase(value, 4)
	if !d.minSet || days < d.minimum {
		d.minimum = days
		d.minSet = true
	}
	if days > d.maximum || d.numberOfValues == 1 {
		d.maximum = days
	}
}

func (d *DateStatistics) AddNull() { d.hasNull = true }
func (d *DateStatistics) Reset()   { *d = DateStatistics{} }

func (d *DateStatistics) Merge(other ColumnStatistics) {
	o, ok := other.(*DateStatistics)
	if !ok {
		return
	}
	if !d.minSet || o.minimum < d.minimum {
		d.minimum = o.minimum
	}
	if o.maximum > d.maximum {
		d.maximum = o.maximum
	}
	d.minSet = d.minSet || o.minSet
	d.mergeBase(&o.baseStatistics)
}

func (d *DateStatistics) Statistics() *orcproto.ColumnStatistics {
	out := &orcproto.ColumnStatistics{}
	d.fill(out)
	min, max := d.minimum, d.maximum
	out.DateStatistics = &orcproto.DateStatistics{Minimum: &min, Maximum: &max}
	return out
}

// TimestampStatistics tracks minimum/maximum milliseconds since epoch, both
// in local and UTC form, for timestamp columns.
type TimestampStatistics struct {
	baseStatistics
	minimum int64
	maximum int64
	minSet  bool
}

func NewTimestampColumnStatistics() *TimestampStatistics { return &TimestampStatistics{} }

func (t *TimestampStatistics) Add(value interface{}) {
	v, ok := value.(time.Time)
	if !ok {
		return
	}
	ms := v.UnixNano() / int64(time.Millisecond)
	t.addBase(value, 8)
	if !t.minSet || ms < t.minimum {
		t.minimum = ms
		t.minSet = true
	}
	if ms > t.maximum || t.numberOfValues == 1 {
		t.maximum = ms
	}
}

func (t *TimestampStatistics) AddNull() { t.hasNull = true }
func (t *TimestampStatistics) Reset()   { *t = TimestampStatistics{} }

func (t *TimestampStatistics) Merge(other ColumnStatistics) {
	o, ok := other.(*TimestampStatistics)
	if !ok {
		return
	}
	if !t.minSet || o.minimum < t.minimum {
		t.minimum = o.minimum
	}
	if o.maximum > t.maximum {
		t.maximum = o.maximum
	}
	t.minSet = t.minSet || o.minSet
	t.mergeBase(&o.baseStatistics)
}

func (t *TimestampStatistics) Statistics() *orcproto.ColumnStatistics {
	out := &orcproto.ColumnStatistics{}
	t.fill(out)
	min, max := t.minimum, t.maximum
	out.TimestampStatistics = &orcproto.TimestampStatistics{
		Minimum: &min, Maximum: &max, MinimumUtc: &min, MaximumUtc: &max,
	}
	return out
}

// statisticsMap holds one ColumnStatistics accumulator per flattened column
// id, mirroring the original writer's per-node statistics bookkeeping that
// addStatsRecursive walks at stripe-flush time.
type statisticsMap map[int]ColumnStatistics

func newStatisticsMap(nodes []*TypeDescription) statisticsMap {
	m := make(statisticsMap, len(nodes))
	for _, n := range nodes {
		m[n.ID()] = NewColumnStatistics(n.Category())
	}
	return m
}

func (e statisticsMap) reset() {
	for _, s := range e {
		s.Reset()
	}
}

func (e statisticsMap) toDenseList(count int) []*orcproto.ColumnStatistics {
	out := make([]*orcproto.ColumnStatistics, count)
	for i := 0; i < count; i++ {
		if s, ok := e[i]; ok {
			out[i] = s.Statistics()
		} else {
			out[i] = &orcproto.ColumnStatistics{}
		}
	}
	return out
}

func (e statisticsMap) merge(other statisticsMap) {
	for id, s := range other {
		if existing, ok := e[id]; ok {
			existing.Merge(s)
		} else {
			e[id] = s
		}
	}
}

// mergeStatisticsProto combines two already-serialized ColumnStatistics
// snapshots, used by the writer to accumulate file-level statistics across
// stripes without holding onto a column writer's live (and stripe-reset)
// accumulator. dst is mutated in place and returned.
func mergeStatisticsProto(dst, src *orcproto.ColumnStatistics) *orcproto.ColumnStatistics {
	if dst == nil {
		return src
	}
	if src == nil {
		return dst
	}
	n := dst.GetNumberOfValues() + src.GetNumberOfValues()
	dst.NumberOfValues = &n
	if src.GetHasNull() {
		hn := true
		dst.HasNull = &hn
	}
	rs := dst.GetRawSize() + src.GetRawSize()
	dst.RawSize = &rs
	if src.StorageSize != nil || dst.StorageSize != nil {
		ss := dst.GetStorageSize() + src.GetStorageSize()
		dst.StorageSize = &ss
	}

	if s := src.IntStatistics; s != nil {
		d := dst.IntStatistics
		if d == nil {
			d = &orcproto.IntegerStatistics{}
		}
		min := minInt64OrDefault(d.Minimum, s.GetMinimum())
		max := s.GetMaximum()
		if d.Maximum != nil && *d.Maximum > max {
			max = *d.Maximum
		}
		sum := d.GetSum() + s.GetSum()
		d.Minimum, d.Maximum, d.Sum = &min, &max, &sum
		dst.IntStatistics = d
	}
	if s := src.DoubleStatistics; s != nil {
		d := dst.DoubleStatistics
		if d == nil {
			d = &orcproto.DoubleStatistics{}
		}
		min := d.GetMinimum()
		if d.Minimum == nil || s.GetMinimum() < min {
			min = s.GetMinimum()
		}
		max := d.GetMaximum()
		if d.Maximum == nil || s.GetMaximum() > max {
			max = s.GetMaximum()
		}
		sum := d.GetSum() + s.GetSum()
		d.Minimum, d.Maximum, d.Sum = &min, &max, &sum
		dst.DoubleStatistics = d
	}
	if s := src.StringStatistics; s != nil {
		d := dst.StringStatistics
		if d == nil {
			d = &orcproto.StringStatistics{}
		}
		min := d.GetMinimum()
		if d.Minimum == nil || s.GetMinimum() < min {
			min = s.GetMinimum()
		}
		max := d.GetMaximum()
		if d.Maximum == nil || s.GetMaximum() > max {
			max = s.GetMaximum()
		}
		sum := d.GetSum() + s.GetSum()
		d.Minimum, d.Maximum, d.Sum = &min, &max, &sum
		dst.StringStatistics = d
	}
	if s := src.BucketStatistics; s != nil {
		d := dst.BucketStatistics
		if d == nil {
			d = &orcproto.BucketStatistics{Count: make([]uint64, len(s.Count))}
		}
		for i, c := range s.Count {
			if i < len(d.Count) {
				d.Count[i] += c
			} else {
				d.Count = append(d.Count, c)
			}
		}
		dst.BucketStatistics = d
	}
	if s := src.BinaryStatistics; s != nil {
		d := dst.BinaryStatistics
		if d == nil {
			d = &orcproto.BinaryStatistics{}
		}
		var dsum, ssum int64
		if d.Sum != nil {
			dsum = *d.Sum
		}
		if s.Sum != nil {
			ssum = *s.Sum
		}
		sum := dsum + ssum
		d.Sum = &sum
		dst.BinaryStatistics = d
	}
	if s := src.DecimalStatistics; s != nil {
		d := dst.DecimalStatistics
		if d == nil {
			d = &orcproto.DecimalStatistics{}
		}
		if d.Minimum == nil && s.Minimum != nil {
			min := *s.Minimum
			d.Minimum = &min
		}
		if s.Maximum != nil {
			max := *s.Maximum
			d.Maximum = &max
		}
		dst.DecimalStatistics = d
	}
	if s := src.DateStatistics; s != nil {
		d := dst.DateStatistics
		if d == nil {
			d = &orcproto.DateStatistics{}
		}
		min, max := dateBounds(d, s)
		d.Minimum, d.Maximum = &min, &max
		dst.DateStatistics = d
	}
	if s := src.TimestampStatistics; s != nil {
		d := dst.TimestampStatistics
		if d == nil {
			d = &orcproto.TimestampStatistics{}
		}
		min, max := timestampBounds(d, s)
		d.Minimum, d.Maximum, d.MinimumUtc, d.MaximumUtc = &min, &max, &min, &max
		dst.TimestampStatistics = d
	}
	return dst
}

func dateBounds(d *orcproto.DateStatistics, s *orcproto.DateStatistics) (int32, int32) {
	min, max := int32(0), int32(0)
	if d.Minimum != nil {
		min = *d.Minimum
	} else if s.Minimum != nil {
		min = *s.Minimum
	}
	if d.Maximum != nil {
		max = *d.Maximum
	}
	if s.Minimum != nil && (d.Minimum == nil || *s.Minimum < min) {
		min = *s.Minimum
	}
	if s.Maximum != nil && (d.Maximum == nil || *s.Maximum > max) {
		max = *s.Maximum
	}
	return min, max
}

func timestampBounds(d *orcproto.TimestampStatistics, s *orcproto.TimestampStatistics) (int64, int64) {
	min, max := int64(0), int64(0)
	if d.Minimum != nil {
		min = *d.Minimum
	} else if s.Minimum != nil {
		min = *s.Minimum
	}
	if d.Maximum != nil {
		max = *d.Maximum
	}
	if s.Minimum != nil && (d.Minimum == nil || *s.Minimum < min) {
		min = *s.Minimum
	}
	if s.Maximum != nil && (d.Maximum == nil || *s.Maximum > max) {
		max = *s.Maximum
	}
	return min, max
}

func minInt64OrDefault(existing *int64, candidate int64) int64 {
	if existing == nil || candidate < *existing {
		return candidate
	}
	return *existing
}

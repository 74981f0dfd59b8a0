package ast

import (
	"fmt"

	"fortio.org/safecast"

	"ripple/internal/source"
)

type FnItem struct {
	Name       source.StringID
	ReturnType TypeID // NoTypeID when the arrow clause is absent
	Body       ExprID // always a block expression
	Visibility Visibility
	ParamStart FnParamID
	ParamCount uint32
	FnSpan     source.Span
	NameSpan   source.Span
	ArrowSpan  source.Span
	Span       source.Span
}

// FnParam represents a single function parameter `name: type`.
type FnParam struct {
	Name     source.StringID
	Type     TypeID
	NameSpan source.Span
	Span     source.Span
}

func (i *Items) Fn(id ItemID) (*FnItem, bool) {
	item := i.Arena.Get(uint32(id))
	if item == nil || item.Kind != ItemFn {
		return nil, false
	}
	return i.Fns.Get(uint32(item.Payload)), true
}

// NewFn creates a new fn item. Parameters are copied into the FnParams arena
// as a contiguous run referenced by ParamStart/ParamCount.
func (i *Items) NewFn(data FnItem, params []FnParam) ItemID {
	count, err := safecast.Conv[uint32](len(params))
	if err != nil {
		panic(fmt.Errorf("fn params count overflow: %w", err))
	}
	data.ParamCount = count
	for idx, param := range params {
		id := FnParamID(i.FnParams.Allocate(param))
		if idx == 0 {
			data.ParamStart = id
		}
	}
	payload := i.Fns.Allocate(data)
	return i.New(ItemFn, data.Span, PayloadID(payload))
}

// CollectParams returns a copy of the parameters of fn, in declaration order.
func (i *Items) CollectParams(fn *FnItem) []FnParam {
	if fn == nil || fn.ParamCount == 0 || !fn.ParamStart.IsValid() {
		return nil
	}
	result := make([]FnParam, 0, fn.ParamCount)
	base := uint32(fn.ParamStart)
	for offset := range fn.ParamCount {
		param := i.FnParams.Get(base + offset)
		if param == nil {
			continue
		}
		result = append(result, *param)
	}
	return result
}

package record

import (
	"context"

	goarr "github.com/reoring/goarr"
)

// DecodeListWithMeta is DecodeWithMeta for a wire array. Presence entries of
// element i live under "/i".
func DecodeListWithMeta[T any](ctx context.Context, wire any) (goarr.Decoded[[]T], error) {
	elems, ok := wire.([]any)
	if !ok {
		_, err := DecodeList[T](ctx, wire)
		return goarr.Decoded[[]T]{}, err
	}
	out := goarr.Decoded[[]T]{
		Value:    make([]T, 0, len(elems)),
		Presence: goarr.PresenceMap{"/": goarr.PresenceSeen},
	}
	var issues goarr.Issues
	for i, el := range elems {
		at := goarr.Root().Index(i)
		dv, err := DecodeWithMeta[T](ctx, el)
		if err != nil {
			iss, ok := goarr.AsIssues(err)
			if !ok {
				return goarr.Decoded[[]T]{}, err
			}
			issues = append(issues, goarr.RebaseIssues(at, iss)...)
			if !goarr.IsCollect(ctx) {
				break
			}
			continue
		}
		out.Value = append(out.Value, dv.Value)
		out.Presence = goarr.MergePresence(out.Presence, at.Pointer(), dv.Presence)
	}
	if len(issues) > 0 {
		return goarr.Decoded[[]T]{}, issues
	}
	return out, nil
}

// EncodeListPreserving re-encodes a list from DecodeListWithMeta, applying
// each element's own presence.
func EncodeListPreserving[T any](ctx context.Context, dv goarr.Decoded[[]T]) ([]any, error) {
	if dv.Presence == nil {
		return nil, goarr.ErrEncodePreserveRequiresPresence
	}
	out := make([]any, 0, len(dv.Value))
	for i, v := range dv.Value {
		at := goarr.Root().Index(i)
		m, err := EncodePreserving(ctx, goarr.Decoded[T]{Value: v, Presence: dv.Presence.Under(at.Pointer())})
		if err != nil {
			if iss, ok := goarr.AsIssues(err); ok {
				return nil, goarr.RebaseIssues(at, iss)
			}
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

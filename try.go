// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package later

// Fallible transformation and the combinators derived from it.
//
// Try is the sole entry point by which failures enter a composition
// chain: no other combinator fails by itself. Once a chain's output is
// Result[A], every subsequent stage decides explicitly how to treat
// each channel — there is no implicit re-raising that skips stages.

// Try applies a fallible function to the result of a computation.
// A nil error from f selects the success channel with the returned
// value; a non-nil error selects the failure channel.
func Try[A, B any](m Later[A], f func(A) (B, error)) Later[Result[B]] {
	return Map(m, func(a A) Result[B] {
		b, err := f(a)
		if err != nil {
			return Fail[B](err)
		}
		return Ok(b)
	})
}

// Recover collapses the failure channel by substituting a fallback
// value, passing success values through unchanged. The output type
// drops the Result wrapper.
func Recover[A any](m Later[Result[A]], fallback A) Later[A] {
	return Map(m, func(r Result[A]) A {
		if v, ok := r.GetOk(); ok {
			return v
		}
		return fallback
	})
}

// Fold unifies both channels into one output type. Exactly one of the
// two handlers runs per delivery.
func Fold[A, B any](m Later[Result[A]], onOk func(A) B, onErr func(error) B) Later[B] {
	return Map(m, func(r Result[A]) B {
		return MatchResult(r, onOk, onErr)
	})
}

// MapOk applies a pure function to the success channel only; failures
// pass through untouched and the output stays a Result.
func MapOk[A, B any](m Later[Result[A]], f func(A) B) Later[Result[B]] {
	return Map(m, func(r Result[A]) Result[B] {
		return MapResult(r, f)
	})
}

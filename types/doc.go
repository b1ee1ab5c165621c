/*
Package types defines typodig's information model. Which is rather simple and
mainly revolves around an [Outcome] of looking up a candidate domain and the
[Result] that gets reported for successfully resolved candidate domains only.

# Unresolved Candidates

Failed lookups are not errors from the perspective of a scan: a candidate
domain that doesn't resolve is simply not registered (or at least not
delegated). An [Outcome] thus always carries the lookup error, if any, and
[Outcome.Result] then explicitly yields “no result”. This keeps the “failure
is not reported” policy in a single place instead of scattering ignored
errors around the resolution workers.
*/
package types

// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import (
	"errors"
	"strings"
)

// ErrNoAddresses signals a lookup that went through without an error, yet
// didn't return any addresses.
var ErrNoAddresses = errors.New("no addresses")

// Outcome represents the outcome of looking up a single candidate domain,
// successful or not.
type Outcome struct {
	FQDN      string   // candidate domain name as submitted
	Addresses []string // resolved IP addresses in textual form, if any
	Err       error    // lookup error, if any
}

// Resolved returns true if the lookup succeeded with at least one address.
func (o Outcome) Resolved() bool {
	return o.Err == nil && len(o.Addresses) > 0
}

// Result returns the reportable Result for this outcome and true, or a zero
// Result and false if the candidate domain didn't resolve.
func (o Outcome) Result() (Result, bool) {
	if !o.Resolved() {
		return Result{}, false
	}
	addrs := make([]string, len(o.Addresses))
	copy(addrs, o.Addresses)
	return Result{
		FQDN:      o.FQDN,
		Addresses: addrs,
	}, true
}

// Reason returns the reason why the candidate domain didn't resolve, or nil if
// it did resolve.
func (o Outcome) Reason() error {
	if o.Err != nil {
		return o.Err
	}
	if len(o.Addresses) == 0 {
		return ErrNoAddresses
	}
	return nil
}

// Result is a successfully resolved candidate domain together with its
// addresses.
type Result struct {
	FQDN      string   `json:"fqdn"`      // the candidate domain name
	Addresses []string `json:"addresses"` // associated IP network address(es)
}

// String renders the result in the “fqdn : addr addr...” line format.
func (r Result) String() string {
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(r.FQDN, "."))
	b.WriteString(" :")
	for _, addr := range r.Addresses {
		b.WriteByte(' ')
		b.WriteString(addr)
	}
	return b.String()
}

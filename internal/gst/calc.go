// Package gst holds the tax arithmetic and statutory report classification
// for Indian GST. Everything in this package is pure computation: no I/O,
// no clocks, no global state. The seller's home state code is always passed
// in explicitly by the caller.
package gst

// TaxSplit is the CGST/SGST/IGST decomposition of a tax amount. Exactly one
// of {CGST+SGST, IGST} is non-zero unless the tax itself is zero: intra-state
// supplies split the tax into equal central and state halves, inter-state
// supplies levy integrated tax in full.
type TaxSplit struct {
	CGST float64 `json:"cgst"`
	SGST float64 `json:"sgst"`
	IGST float64 `json:"igst"`
}

// Compute splits the GST on a taxable value by jurisdiction. Inputs are
// expected to be non-negative; negative values are a caller contract
// violation and the result is undefined.
func Compute(taxableValue, ratePercent float64, interState bool) TaxSplit {
	tax := taxableValue * ratePercent / 100
	if interState {
		return TaxSplit{IGST: tax}
	}
	return TaxSplit{CGST: tax / 2, SGST: tax / 2}
}

// InterState reports whether a supply to the given party state code is
// inter-state relative to the seller's home state code. Equal codes mean
// intra-state.
func InterState(partyStateCode, homeStateCode string) bool {
	return partyStateCode != homeStateCode
}

// File: utils/constants.go
package utils

// Currency is the display prefix for all monetary amounts. Amounts themselves
// are whole currency units, no fractional handling.
const Currency = "₹"

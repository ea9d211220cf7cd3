package model

const isbnDigits = 13

// ValidateIsbn checks a 13 digit EAN Bookland number (978/979 prefix,
// mod 10 check digit with weights 1,3,1,3...)
func ValidateIsbn(isbn int64) error {
	if isbn <= 0 {
		return ErrIsbnLength
	}

	digits := make([]int, 0, isbnDigits)
	for n := isbn; n > 0; n /= 10 {
		digits = append(digits, int(n%10))
	}
	if len(digits) != isbnDigits {
		return ErrIsbnLength
	}
	// most significant first
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	if digits[0] != 9 || digits[1] != 7 || (digits[2] != 8 && digits[2] != 9) {
		return ErrIsbnPrefix
	}

	sum := 0
	for i := 0; i < isbnDigits-1; i++ {
		if i%2 == 0 {
			sum += digits[i]
		} else {
			sum += digits[i] * 3
		}
	}
	check := (10 - sum%10) % 10
	if digits[isbnDigits-1] != check {
		return ErrIsbnCheckDigit
	}
	return nil
}

package unistr

func lower(c byte) byte {
	if c-'A' < 26 {
		return c + 'a' - 'A'
	}
	return c
}

func upper(c byte) byte {
	if c-'a' < 26 {
		return c - ('a' - 'A')
	}
	return c
}

// ToLower folds ASCII upper case letters in b to lower case in place.
// Other bytes are untouched.
func ToLower(b []byte) {
	for i, c := range b {
		b[i] = lower(c)
	}
}

// ToUpper folds ASCII lower case letters in b to upper case in place.
func ToUpper(b []byte) {
	for i, c := range b {
		b[i] = upper(c)
	}
}

// ToLowerCopy copies src into dst with ASCII lower casing and returns the
// number of bytes copied.
func ToLowerCopy(dst, src []byte) int {
	n := copy(dst, src)
	ToLower(dst[:n])
	return n
}

// ToUpperCopy copies src into dst with ASCII upper casing and returns the
// number of bytes copied.
func ToUpperCopy(dst, src []byte) int {
	n := copy(dst, src)
	ToUpper(dst[:n])
	return n
}

// IsLower reports whether b has no ASCII upper case letter.
func IsLower(b []byte) bool {
	for _, c := range b {
		if c >= 'A' && c <= 'Z' {
			return false
		}
	}
	return true
}

// IsUpper reports whether b has no ASCII lower case letter.
func IsUpper(b []byte) bool {
	for _, c := range b {
		if c >= 'a' && c <= 'z' {
			return false
		}
	}
	return true
}

// CompareFoldASCII compares a and b treating ASCII letters case
// insensitively. Other bytes compare by value. It returns -1, 0 or +1.
func CompareFoldASCII(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		ca, cb := lower(a[i]), lower(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// EqualFoldASCII reports whether a and b are equal under ASCII case
// folding.
func EqualFoldASCII(a, b []byte) bool {
	return len(a) == len(b) && CompareFoldASCII(a, b) == 0
}

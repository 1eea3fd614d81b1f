package crypto

import "unicode/utf8"

// MaxScore is the highest value Score can return.
const MaxScore = 6

var strengthLabels = []string{"Very Weak", "Weak", "Fair", "Good", "Strong", "Very Strong"}

// Score rates a password from 0 to MaxScore: one point each for a length of
// at least 8, a length of at least 12, and the presence of a lowercase
// letter, an uppercase letter, a digit, and any other character.
func Score(password string) int {
	var hasLower, hasUpper, hasDigit, hasOther bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasOther = true
		}
	}

	n := utf8.RuneCountInString(password)
	score := 0
	for _, ok := range []bool{n >= 8, n >= 12, hasLower, hasUpper, hasDigit, hasOther} {
		if ok {
			score++
		}
	}
	return score
}

// Label names a score. Scores outside 1..MaxScore, including the empty
// password's 0, are "N/A".
func Label(score int) string {
	if score < 1 || score > len(strengthLabels) {
		return "N/A"
	}
	return strengthLabels[score-1]
}

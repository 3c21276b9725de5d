package roster

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// NormalizeBed canonicalizes a bed number for comparison: surrounding
// whitespace is trimmed and letters lower-cased, so " 3A" and "3a" name the
// same bed. A blank result means "no bed assigned".
func NormalizeBed(bed string) string {
	return strings.ToLower(strings.TrimSpace(bed))
}

// CheckConflict reports whether bed is already taken in the given room.
// It inspects only the snapshot passed in. A blank candidate bed never
// conflicts. excludeID skips the patient being edited or transferred so they
// do not collide with themselves; pass uuid.Nil for new admissions.
// The first occupant found in snapshot order wins.
func CheckConflict(snapshot []*Patient, roomID, bed string, excludeID uuid.UUID) *Patient {
	norm := NormalizeBed(bed)
	if norm == "" {
		return nil
	}
	for _, p := range snapshot {
		if p.ID == excludeID {
			continue
		}
		if p.Room != roomID {
			continue
		}
		if NormalizeBed(p.BedNumber) == norm {
			return p
		}
	}
	return nil
}

// CompareBeds orders bed numbers the way a human reads them: runs of digits
// compare numerically, everything else byte-wise, so "2" sorts before "10"
// and "3A" before "3B". Blank beds sort after assigned ones.
func CompareBeds(a, b string) int {
	na, nb := NormalizeBed(a), NormalizeBed(b)
	switch {
	case na == "" && nb == "":
		return 0
	case na == "":
		return 1
	case nb == "":
		return -1
	}

	for na != "" && nb != "" {
		da, ra := leadingRun(na)
		db, rb := leadingRun(nb)

		if isDigits(da) && isDigits(db) {
			// Numeric runs compare by value; strip leading zeros first.
			ta, tb := strings.TrimLeft(da, "0"), strings.TrimLeft(db, "0")
			if len(ta) != len(tb) {
				if len(ta) < len(tb) {
					return -1
				}
				return 1
			}
			if c := strings.Compare(ta, tb); c != 0 {
				return c
			}
		} else if c := strings.Compare(da, db); c != 0 {
			return c
		}
		na, nb = ra, rb
	}

	return strings.Compare(na, nb)
}

// leadingRun splits s into its first maximal run of digits or non-digits and
// the remainder.
func leadingRun(s string) (run, rest string) {
	digit := s[0] >= '0' && s[0] <= '9'
	for i := 0; i < len(s); i++ {
		if (s[i] >= '0' && s[i] <= '9') != digit {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// SortByBed orders patients in place for display and printing: by bed number
// (natural order, blanks last), then by admission time.
func SortByBed(patients []*Patient) {
	sort.SliceStable(patients, func(i, j int) bool {
		if c := CompareBeds(patients[i].BedNumber, patients[j].BedNumber); c != 0 {
			return c < 0
		}
		return patients[i].AdmittedAt.Before(patients[j].AdmittedAt)
	})
}

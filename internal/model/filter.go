package model

// FilterElements returns the elements matching the given kinds and
// bounding box, preserving document order. An empty kinds list and a nil
// bbox match everything.
func FilterElements(elements []ElementSpec, kinds []Kind, bbox *[4]int) []ElementSpec {
	if len(kinds) == 0 && bbox == nil {
		return elements
	}

	kindSet := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		kindSet[k] = true
	}

	var result []ElementSpec
	for _, el := range elements {
		kindMatch := len(kindSet) == 0 || kindSet[el.Kind]
		bboxMatch := bbox == nil || BoundsIntersect(el.Geometry.Bounds(), *bbox)
		if kindMatch && bboxMatch {
			result = append(result, el)
		}
	}
	return result
}

// FilterByID returns the elements whose id is in ids.
func FilterByID(elements []ElementSpec, ids []string) []ElementSpec {
	if len(ids) == 0 {
		return elements
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var result []ElementSpec
	for _, el := range elements {
		if want[el.ID] {
			result = append(result, el)
		}
	}
	return result
}

// BoundsIntersect reports whether two [x, y, width, height] rectangles overlap.
func BoundsIntersect(a, b [4]int) bool {
	ax1, ay1, ax2, ay2 := a[0], a[1], a[0]+a[2], a[1]+a[3]
	bx1, by1, bx2, by2 := b[0], b[1], b[0]+b[2], b[1]+b[3]
	return ax1 < bx2 && ax2 > bx1 && ay1 < by2 && ay2 > by1
}

// Select returns a copy of l that keeps only the elements matching kinds
// and ids. With no kinds and no ids l itself is returned.
func (l *LayoutSpec) Select(kinds []Kind, ids []string) *LayoutSpec {
	if len(kinds) == 0 && len(ids) == 0 {
		return l
	}
	out := *l
	out.Elements = FilterByID(FilterElements(l.Elements, kinds, nil), ids)
	return &out
}

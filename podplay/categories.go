package podplay

// NestCategories links a flat category list into a forest using each node's
// parent id. Nodes are linked in place: every child is appended to its
// parent's Children slice, and the returned slice holds the roots in input
// order. Nodes that reference a parent id missing from the input are dropped.
// Passing the same nodes twice duplicates their children.
func NestCategories(categories []*Category) []*Category {
	byID := make(map[int64]*Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	roots := make([]*Category, 0, len(categories))
	for _, category := range categories {
		if category.ParentID == nil {
			roots = append(roots, category)
			continue
		}
		parent, ok := byID[*category.ParentID]
		if !ok {
			continue
		}
		parent.Children = append(parent.Children, category)
	}
	return roots
}

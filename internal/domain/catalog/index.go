package catalog

// Index maps each known course to the published lessons that belong to it
// through its modules. An Index is immutable once built.
type Index struct {
	courses  []Course
	byID     map[string]int
	lessons  map[string][]string
	owner    map[string]string
	excluded []OrphanError
}

// BuildIndex resolves Lesson -> Module -> Course chains.
//
// Modules whose course is unknown and lessons whose module does not resolve
// to a course are excluded and reported through Excluded. Unpublished
// lessons are skipped. Duplicate ids within any entity kind fail with a
// *DuplicateIDError.
func BuildIndex(courses []Course, modules []Module, lessons []Lesson) (*Index, error) {
	idx := &Index{
		courses: make([]Course, 0, len(courses)),
		byID:    make(map[string]int, len(courses)),
		lessons: make(map[string][]string),
		owner:   make(map[string]string),
	}

	for _, c := range courses {
		if _, dup := idx.byID[c.ID]; dup {
			return nil, &DuplicateIDError{Kind: KindCourse, ID: c.ID}
		}
		idx.byID[c.ID] = len(idx.courses)
		idx.courses = append(idx.courses, c)
	}

	moduleCourse := make(map[string]string, len(modules))
	seenModules := make(map[string]struct{}, len(modules))
	for _, m := range modules {
		if _, dup := seenModules[m.ID]; dup {
			return nil, &DuplicateIDError{Kind: KindModule, ID: m.ID}
		}
		seenModules[m.ID] = struct{}{}
		if _, ok := idx.byID[m.CourseID]; !ok {
			idx.excluded = append(idx.excluded, OrphanError{Kind: KindModule, ID: m.ID, ParentID: m.CourseID})
			continue
		}
		moduleCourse[m.ID] = m.CourseID
	}

	seenLessons := make(map[string]struct{}, len(lessons))
	for _, l := range lessons {
		if _, dup := seenLessons[l.ID]; dup {
			return nil, &DuplicateIDError{Kind: KindLesson, ID: l.ID}
		}
		seenLessons[l.ID] = struct{}{}

		courseID, orphan := resolveLesson(l, moduleCourse)
		if orphan != nil {
			idx.excluded = append(idx.excluded, *orphan)
			continue
		}
		if !l.IsPublished {
			continue
		}
		idx.owner[l.ID] = courseID
		idx.lessons[courseID] = append(idx.lessons[courseID], l.ID)
	}

	return idx, nil
}

func resolveLesson(l Lesson, moduleCourse map[string]string) (string, *OrphanError) {
	courseID, ok := moduleCourse[l.ModuleID]
	if !ok {
		return "", &OrphanError{Kind: KindLesson, ID: l.ID, ParentID: l.ModuleID}
	}
	return courseID, nil
}

// Courses returns every known course in input order.
func (i *Index) Courses() []Course {
	out := make([]Course, len(i.courses))
	copy(out, i.courses)
	return out
}

// Course looks up a course by id.
func (i *Index) Course(id string) (Course, bool) {
	pos, ok := i.byID[id]
	if !ok {
		return Course{}, false
	}
	return i.courses[pos], true
}

// Lessons returns the published lesson ids of a course in input order.
func (i *Index) Lessons(courseID string) []string {
	ids := i.lessons[courseID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Contains reports whether lessonID is a published lesson of courseID.
func (i *Index) Contains(courseID, lessonID string) bool {
	owner, ok := i.owner[lessonID]
	return ok && owner == courseID
}

// CourseOf returns the course a published lesson counts toward.
func (i *Index) CourseOf(lessonID string) (string, bool) {
	courseID, ok := i.owner[lessonID]
	return courseID, ok
}

// TotalLessons is the number of published lessons in a course.
func (i *Index) TotalLessons(courseID string) int {
	return len(i.lessons[courseID])
}

// Excluded lists the orphaned modules and lessons dropped while indexing.
func (i *Index) Excluded() []OrphanError {
	out := make([]OrphanError, len(i.excluded))
	copy(out, i.excluded)
	return out
}

package model

// Filters over loaded request collections. All of them preserve the
// input (insertion) order.

// FilterPending keeps the requests a reviewer still has to act on:
// same department, not yet decided.
func FilterPending(reqs []Request, department string) []Request {
	out := make([]Request, 0, len(reqs))
	for _, req := range reqs {
		if req.Department == department && req.Status == StatusPending {
			out = append(out, req)
		}
	}
	return out
}

// FilterByStudent keeps the requests submitted by one student.
func FilterByStudent(reqs []Request, studentID string) []Request {
	out := make([]Request, 0, len(reqs))
	for _, req := range reqs {
		if req.StudentID == studentID {
			out = append(out, req)
		}
	}
	return out
}

// FilterByDepartment keeps a department's full history, all statuses.
func FilterByDepartment(reqs []Request, department string) []Request {
	out := make([]Request, 0, len(reqs))
	for _, req := range reqs {
		if req.Department == department {
			out = append(out, req)
		}
	}
	return out
}

// Stats counts a collection by status.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

func CountStats(reqs []Request) Stats {
	stats := Stats{Total: len(reqs)}
	for _, req := range reqs {
		switch req.Status {
		case StatusPending:
			stats.Pending++
		case StatusApproved:
			stats.Approved++
		case StatusRejected:
			stats.Rejected++
		}
	}
	return stats
}

package alerts

// Summary son los contadores del indicador de avisos.
type Summary struct {
	Total  int
	Urgent int
	High   int
	Medium int
	Low    int
}

func Summarize(list []Alert) Summary {
	s := Summary{Total: len(list)}
	for _, a := range list {
		switch a.Priority {
		case PriorityUrgent:
			s.Urgent++
		case PriorityHigh:
			s.High++
		case PriorityMedium:
			s.Medium++
		case PriorityLow:
			s.Low++
		}
	}
	return s
}

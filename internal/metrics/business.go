package metrics

// IncrementNearbySearch increments the nearby search counter
func (m *Metrics) IncrementNearbySearch() {
	m.safeExecute("IncrementNearbySearch", func() {
		m.NearbySearchTotal.Inc()
	})
}

// IncrementRatingSubmitted increments the rating submission counter
func (m *Metrics) IncrementRatingSubmitted() {
	m.safeExecute("IncrementRatingSubmitted", func() {
		m.RatingSubmittedTotal.Inc()
	})
}

// IncrementPostCreated increments the post creation counter
func (m *Metrics) IncrementPostCreated() {
	m.safeExecute("IncrementPostCreated", func() {
		m.PostCreatedTotal.Inc()
	})
}

// SetCafesTotal sets the cafe catalog size gauge
func (m *Metrics) SetCafesTotal(count int64) {
	m.safeExecute("SetCafesTotal", func() {
		m.CafesTotal.Set(float64(count))
	})
}

// SetBoardsTotal sets total boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetPostsTotal sets total posts gauge
func (m *Metrics) SetPostsTotal(count int64) {
	m.safeExecute("SetPostsTotal", func() {
		m.PostsTotal.Set(float64(count))
	})
}

package metrics

// IncrementVideoCreated increments video upload counter
func (m *Metrics) IncrementVideoCreated() {
	m.safeExecute("IncrementVideoCreated", func() {
		m.VideoCreatedTotal.Inc()
	})
}

// IncrementCommentCreated increments root comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// IncrementReplyCreated increments reply creation counter
func (m *Metrics) IncrementReplyCreated() {
	m.safeExecute("IncrementReplyCreated", func() {
		m.ReplyCreatedTotal.Inc()
	})
}

// AddCommentsDeleted adds to the deleted comment counter, cascades included
func (m *Metrics) AddCommentsDeleted(count int64) {
	m.safeExecute("AddCommentsDeleted", func() {
		m.CommentDeletedTotal.Add(float64(count))
	})
}

// AddOrphansSwept adds to the orphan sweep counter
func (m *Metrics) AddOrphansSwept(count int64) {
	m.safeExecute("AddOrphansSwept", func() {
		m.OrphansSweptTotal.Add(float64(count))
	})
}

// SetChannelsTotal sets total channels gauge
func (m *Metrics) SetChannelsTotal(count int64) {
	m.safeExecute("SetChannelsTotal", func() {
		m.ChannelsTotal.Set(float64(count))
	})
}

// SetVideosTotal sets total videos gauge
func (m *Metrics) SetVideosTotal(count int64) {
	m.safeExecute("SetVideosTotal", func() {
		m.VideosTotal.Set(float64(count))
	})
}

// SetCommentsTotal sets total comments gauge
func (m *Metrics) SetCommentsTotal(count int64) {
	m.safeExecute("SetCommentsTotal", func() {
		m.CommentsTotal.Set(float64(count))
	})
}

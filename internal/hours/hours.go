package hours

import (
	"strings"
	"time"
)

// Status는 영업 시간 문자열 기준의 현재 상태
type Status string

const (
	StatusBeforeOpen Status = "BEFORE_OPEN"
	StatusOpen       Status = "OPEN"
	StatusClosed     Status = "CLOSED"
	StatusUnknown    Status = "UNKNOWN"
)

// Evaluate는 "HH:MM ~ HH:MM" 또는 "HH:MM - HH:MM" 형식의 영업 시간과
// 현재 시각을 비교해 상태를 반환한다. 시작과 종료 시각은 둘 다 영업 중으로
// 포함된다. 파싱에 실패하면 항상 Unknown이며, 종료가 시작보다 빠른
// (자정을 넘기는) 범위도 단순 비교 대신 Unknown으로 처리한다.
func Evaluate(text string, now time.Time) Status {
	open, close, ok := parseRange(text)
	if !ok {
		return StatusUnknown
	}

	minutes := now.Hour()*60 + now.Minute()
	switch {
	case minutes < open:
		return StatusBeforeOpen
	case minutes <= close:
		return StatusOpen
	default:
		return StatusClosed
	}
}

// parseRange는 영업 시간 문자열을 자정 기준 분 단위 (open, close)로 변환한다.
// 구분자는 "~"와 "-" 둘 다 허용한다.
func parseRange(text string) (open, close int, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, 0, false
	}

	sep := "~"
	if !strings.Contains(text, sep) {
		sep = "-"
	}
	parts := strings.SplitN(text, sep, 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	open, ok = parseClock(parts[0])
	if !ok {
		return 0, 0, false
	}
	close, ok = parseClock(parts[1])
	if !ok {
		return 0, 0, false
	}
	if close < open {
		// 자정을 넘기는 영업 시간은 다루지 않는다
		return 0, 0, false
	}
	return open, close, true
}

func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

package dashboard

import (
	"fmt"
	"testing"
	"time"

	"course-dashboard/internal/domain"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

func TestUpcomingCourses(t *testing.T) {
	courses := []domain.Course{
		course("past", withStart("2025-03-01")),
		course("today", withStart("2025-03-10")),
		course("later-today", withStart("2025-03-10T18:00:00")),
		course("missing"),
		course("garbage", withStart("nächste Woche")),
		course("april", withStart("2025-04-01")),
		course("march-a", withStart("2025-03-20")),
		course("march-b", withStart("2025-03-20")),
		course("tomorrow", withStart("2025-03-11")),
	}

	t.Run("overview is strictly after today", func(t *testing.T) {
		got := UpcomingCourses(courses, testNow, OverviewOptions())
		assert.Equal(t, []string{"later-today", "tomorrow", "march-a", "march-b", "april"}, ids(got))
	})

	t.Run("compact includes today and keeps four", func(t *testing.T) {
		got := UpcomingCourses(courses, testNow, CompactOptions())
		assert.Equal(t, []string{"today", "later-today", "tomorrow", "march-a"}, ids(got))
	})

	t.Run("zero options fall back to the default limit", func(t *testing.T) {
		got := UpcomingCourses(courses, testNow, Options{})
		assert.Len(t, got, DefaultUpcomingLimit)
	})

	t.Run("never includes courses without a usable start date", func(t *testing.T) {
		for _, opts := range []Options{OverviewOptions(), CompactOptions(), {UpcomingLimit: 100}} {
			for _, c := range UpcomingCourses(courses, testNow, opts) {
				_, ok := domain.ParseDatePtr(c.Fields.StartDate, time.UTC)
				assert.True(t, ok, "course %s", c.ID)
			}
		}
	})

	t.Run("stable for equal start dates", func(t *testing.T) {
		var same []domain.Course
		for i := 0; i < 10; i++ {
			same = append(same, course(fmt.Sprintf("s%d", i), withStart("2025-05-05")))
		}
		got := UpcomingCourses(same, testNow, Options{UpcomingLimit: 10})
		assert.Equal(t, ids(same), ids(got))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, UpcomingCourses(nil, testNow, OverviewOptions()))
	})
}

func TestRecentRegistrations(t *testing.T) {
	regs := []domain.Registration{
		registration("undated-1", "c1", nil, ""),
		registration("jan", "c1", nil, "2025-01-15"),
		registration("bad", "c1", nil, "gestern"),
		registration("mar", "c1", nil, "2025-03-02"),
		registration("feb-a", "c1", nil, "2025-02-01"),
		registration("feb-b", "c1", nil, "2025-02-01"),
		registration("mar-time", "c1", nil, "2025-03-02T08:00:00"),
	}

	t.Run("newest first, limited", func(t *testing.T) {
		got := RecentRegistrations(regs, time.UTC)
		assert.Equal(t, []string{"mar-time", "mar", "feb-a", "feb-b", "jan"}, ids(got))
	})

	t.Run("missing dates sort last", func(t *testing.T) {
		short := []domain.Registration{regs[0], regs[1], regs[2]}
		got := RecentRegistrations(short, time.UTC)
		assert.Equal(t, []string{"jan", "undated-1", "bad"}, ids(got))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, RecentRegistrations(nil, time.UTC))
	})
}

package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yardenlev/miluim"
	"github.com/yardenlev/miluim/extract"
)

const baseURL = "https://t.example/channel/"

func TestParsePost(t *testing.T) {
	t.Parallel()

	t.Run("empty body yields no records", func(t *testing.T) {
		t.Parallel()

		records := extract.ParsePost(miluim.Post{ID: 1, Body: ""}, baseURL)

		assert.Empty(t, records)
	})

	t.Run("body without ad number yields no records", func(t *testing.T) {
		t.Parallel()

		body := "⬅️ דרושים: \n** נהג\n⬅️ כישורים נדרשים: רישיון"
		records := extract.ParsePost(miluim.Post{ID: 1, Body: body}, baseURL)

		assert.Empty(t, records)
	})

	t.Run("fans out one record per role", func(t *testing.T) {
		t.Parallel()

		body := "⬅️ דרושים: ** נהג\n** טבח\n⬅️ כישורים נדרשים: רישיון נהיגה\nמודעה מספר #1234"
		records := extract.ParsePost(miluim.Post{ID: 42, Body: body}, baseURL)

		require.Len(t, records, 2)
		assert.Equal(t, "נהג", records[0].Role)
		assert.Equal(t, "טבח", records[1].Role)
		for i, record := range records {
			assert.Equal(t, "1234", record.AdNumber)
			assert.Equal(t, 42, record.PostID)
			assert.Equal(t, i, record.RolePosition)
			assert.Equal(t, "רישיון נהיגה", record.Qualifications)
			assert.Equal(t, "https://t.example/channel/42", record.Link)
		}
	})

	t.Run("roles differ only in role fields", func(t *testing.T) {
		t.Parallel()

		body := "מודעה מספר #9\n" +
			"סוג יחידה: חי\"ר\n- -\nאזור בארץ: צפון\n- -\n" +
			"⬅️ דרושים: \n** חובש\n** פראמדיק\n** נהג\n"
		records := extract.ParsePost(miluim.Post{ID: 7, Body: body}, baseURL)

		require.Len(t, records, 3)
		for _, record := range records {
			shared := *record
			shared.Role = ""
			shared.RolePosition = 0
			base := *records[0]
			base.Role = ""
			base.RolePosition = 0
			assert.Equal(t, base, shared)
		}
	})

	t.Run("substitutes placeholder role when no bullets are listed", func(t *testing.T) {
		t.Parallel()

		body := "מודעה מספר #55\nאזור בארץ: מרכז\n"
		records := extract.ParsePost(miluim.Post{ID: 3, Body: body}, baseURL)

		require.Len(t, records, 1)
		assert.Equal(t, extract.PlaceholderRole, records[0].Role)
		assert.Equal(t, "מרכז", records[0].Area)
	})

	t.Run("trims unit type at the area label", func(t *testing.T) {
		t.Parallel()

		body := "מודעה מספר #8\nסוג יחידה: חי\"ר\nאזור בארץ: דרום\n"
		records := extract.ParsePost(miluim.Post{ID: 8, Body: body}, baseURL)

		require.Len(t, records, 1)
		assert.Equal(t, "חי\"ר", records[0].UnitType)
		assert.Equal(t, "דרום", records[0].Area)
	})

	t.Run("derives months from the service period", func(t *testing.T) {
		t.Parallel()

		body := "מודעה מספר #12\nתקופת שירות הקרובה: מרץ - אפריל\n"
		records := extract.ParsePost(miluim.Post{ID: 12, Body: body}, baseURL)

		require.Len(t, records, 1)
		assert.Equal(t, "מרץ - אפריל", records[0].ServicePeriod)
		assert.Equal(t, "מרץ", records[0].StartMonth)
		assert.Equal(t, "אפריל", records[0].EndMonth)
	})

	t.Run("leaves months empty for a malformed period", func(t *testing.T) {
		t.Parallel()

		body := "מודעה מספר #12\nתקופת שירות הקרובה: מרץ\n"
		records := extract.ParsePost(miluim.Post{ID: 12, Body: body}, baseURL)

		require.Len(t, records, 1)
		assert.Equal(t, "מרץ", records[0].ServicePeriod)
		assert.Equal(t, "", records[0].StartMonth)
		assert.Equal(t, "", records[0].EndMonth)
	})

	t.Run("carries flag signals into every record", func(t *testing.T) {
		t.Parallel()

		body := "מודעה מספר #77\n⏰\n🔊 זמני או קבוע\n👉 מתאים לבעלי פטור\n" +
			"⬅️ דרושים: \n** נהג\n** טבח\n"
		records := extract.ParsePost(miluim.Post{ID: 77, Body: body}, baseURL)

		require.Len(t, records, 2)
		for _, record := range records {
			assert.True(t, record.Immediate)
			assert.Equal(t, "זמני או קבוע", record.RecruitmentType)
			assert.Equal(t, miluim.TriYes, record.Exemption)
			assert.Equal(t, miluim.TriUnknown, record.Pool)
		}
	})

	t.Run("missing markers degrade to empty fields", func(t *testing.T) {
		t.Parallel()

		body := "מודעה מספר #13"
		records := extract.ParsePost(miluim.Post{ID: 13, Body: body}, baseURL)

		require.Len(t, records, 1)
		record := records[0]
		assert.Equal(t, "", record.UnitType)
		assert.Equal(t, "", record.Area)
		assert.Equal(t, "", record.Qualifications)
		assert.False(t, record.Immediate)
		assert.Equal(t, miluim.TriUnknown, record.Exemption)
	})

	t.Run("is deterministic for identical input", func(t *testing.T) {
		t.Parallel()

		post := miluim.Post{ID: 4, Body: sampleBody}

		first := extract.ParsePost(post, baseURL)
		second := extract.ParsePost(post, baseURL)

		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, *first[i], *second[i])
		}
	})
}

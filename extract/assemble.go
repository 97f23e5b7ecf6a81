package extract

import (
	"strconv"

	"github.com/yardenlev/miluim"
)

// ParsePost converts a fetched post into zero or more job records.
//
// A post with an empty body, or whose body carries no ad number, is
// rejected outright and yields no records. A valid ad degrades
// gracefully instead: every missing field is an empty value, and an ad
// with no role bullets is emitted once under the placeholder role. An
// ad with N role bullets fans out into N records that share every
// non-role field and the same link (baseURL followed by the post ID).
//
// ParsePost is pure: identical input yields identical records.
func ParsePost(post miluim.Post, baseURL string) []*miluim.Record {
	body := post.Body
	if body == "" {
		return nil
	}

	adNumber := AdNumber(body)
	if adNumber == "" {
		return nil
	}

	// The unit-type value is trimmed at the area label because the two
	// fields bleed together when the source omits the rule line between
	// them.
	unitType := TrimAtLabel(Between(body, LabelUnitType), LabelArea)
	servicePeriod := Between(body, LabelServicePeriod)
	startMonth, endMonth := ParseServicePeriod(servicePeriod)
	exempt, pool := ExemptionAndPool(body)

	shared := miluim.Record{
		PostID:          post.ID,
		AdNumber:        adNumber,
		UnitType:        unitType,
		Area:            Between(body, LabelArea),
		Qualifications:  Section(body, TitleQualifications),
		UnitInfo:        Section(body, TitleUnitInfo),
		ServiceTerms:    Section(body, TitleServiceTerms),
		ServicePeriod:   servicePeriod,
		StartMonth:      startMonth,
		EndMonth:        endMonth,
		Immediate:       HasImmediate(body),
		RecruitmentType: RecruitmentType(body),
		Exemption:       exempt,
		Pool:            pool,
		Link:            baseURL + strconv.Itoa(post.ID),
	}

	roles := Roles(body)
	if len(roles) == 0 {
		roles = []string{PlaceholderRole}
	}

	records := make([]*miluim.Record, 0, len(roles))
	for i, role := range roles {
		record := shared
		record.Role = role
		record.RolePosition = i
		records = append(records, &record)
	}
	return records
}

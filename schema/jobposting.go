package schema

// JobPosting is the definition for job advertisements.
type JobPosting struct {
	definition
}

// NewJobPosting creates the JobPosting definition.
func NewJobPosting() *JobPosting {
	return &JobPosting{definition{
		typeName:    "JobPosting",
		label:       "Job Posting",
		description: "A job advertisement with organization, location and salary data.",
		required:    []string{"title", "description", "datePosted", "hiringOrganization"},
		recommended: []string{"validThrough", "employmentType", "jobLocation", "baseSalary"},
		properties: []Property{
			{Name: "additionalType", Type: TypeURL, Description: "A more specific schema.org type.", DocURL: docURL("additionalType")},
			{Name: "title", Type: TypeText, Auto: "post_title", Description: "The job title.", Example: "Backend Engineer", DocURL: docURL("title")},
			{Name: "description", Type: TypeText, Auto: "post_content", Description: "The full job description.", DocURL: docURL("description")},
			{Name: "datePosted", Type: TypeDate, Auto: "post_date", Description: "Posting date.", DocURL: docURL("datePosted")},
			{Name: "validThrough", Type: TypeDate, Auto: "meta:_valid_through", Description: "Application deadline.", DocURL: docURL("validThrough")},
			{Name: "employmentType", Type: TypeText, Auto: "meta:_employment_type", Description: "FULL_TIME, PART_TIME, CONTRACTOR...", Example: "FULL_TIME", DocURL: docURL("employmentType")},
			{Name: "hiringOrganization", Type: TypeOrganization, Auto: "site_name", Description: "The hiring organization.", DocURL: docURL("hiringOrganization")},
			{Name: "jobLocation", Type: TypeObject, Auto: "meta:_job_location", Description: "The work location.", DocURL: docURL("jobLocation")},
			{Name: "baseSalary", Type: TypeNumber, Auto: "meta:_salary", Description: "Base salary amount.", DocURL: docURL("baseSalary")},
		},
	}}
}

// Build assembles the JobPosting object.
func (j *JobPosting) Build(ctx *BuildContext) *Object {
	obj := NewObject(j.typeName)
	j.fill(ctx, obj, j.auto)

	if v, ok := obj.Get("jobLocation"); ok {
		if m := asMap(v); m != nil {
			if place := PlaceObject(m); place != nil {
				obj.Set("jobLocation", place)
			} else {
				obj.Delete("jobLocation")
			}
		}
	}

	obj.Clean()
	return obj
}

func (j *JobPosting) auto(ctx *BuildContext, property string) any {
	item := ctx.Item
	switch property {
	case "title":
		return item.Title
	case "description":
		return item.Content
	case "datePosted":
		return isoDate(item.Published)
	case "validThrough":
		return item.MetaValue("_valid_through")
	case "employmentType":
		return item.MetaValue("_employment_type")
	case "hiringOrganization":
		return OrganizationObject(ctx.Site())
	case "jobLocation":
		return PlaceObject(asMap(item.MetaValue("_job_location")))
	case "baseSalary":
		return item.MetaValue("_salary")
	}
	return nil
}

package tagindex

import "github.com/specslice/specslice/internal/model"

// indexMethods are the methods the index covers, scanned in this fixed order
// within each path.
var indexMethods = []model.Method{
	model.MethodGet,
	model.MethodPost,
	model.MethodPut,
	model.MethodPatch,
	model.MethodDelete,
}

// UntaggedBucket collects operations that declare no tags.
const UntaggedBucket = "Untagged"

// Methods returns the fixed method order the index scans.
func Methods() []model.Method {
	return indexMethods
}

// Analyze indexes every GET/POST/PUT/PATCH/DELETE operation by tag. Buckets
// appear in first-seen order, a multi-tagged operation counts once in every
// bucket it names, and untagged operations land in the synthetic Untagged
// bucket.
func Analyze(doc *model.Document) []model.TagBucket {
	var order []string
	buckets := map[string]*model.TagBucket{}

	for _, path := range doc.Paths {
		for _, method := range indexMethods {
			for i := range path.Operations {
				op := &path.Operations[i]
				if op.Method != method {
					continue
				}
				ep := DescribeOperation(path.Path, op)
				tags := op.Tags
				if len(tags) == 0 {
					tags = []string{UntaggedBucket}
				}
				for _, tag := range tags {
					b, ok := buckets[tag]
					if !ok {
						b = &model.TagBucket{Name: tag, Methods: map[string]int{}}
						buckets[tag] = b
						order = append(order, tag)
					}
					b.Total++
					b.Methods[ep.Method]++
					b.Endpoints = append(b.Endpoints, ep)
				}
			}
		}
	}

	out := make([]model.TagBucket, 0, len(order))
	for _, tag := range order {
		out = append(out, *buckets[tag])
	}
	return out
}

// Bucket finds a tag's bucket in an index. Returns nil when absent.
func Bucket(index []model.TagBucket, tag string) *model.TagBucket {
	for i := range index {
		if index[i].Name == tag {
			return &index[i]
		}
	}
	return nil
}

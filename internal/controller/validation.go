package controller

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/lshigami/Assessly/internal/curriculum"
	"github.com/lshigami/Assessly/internal/dto"
)

var registerOnce sync.Once

// RegisterValidators adds the curriculum tags to gin's validator. Blank values pass every tag.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator is not go-playground/validator")
	}
	var err error
	registerOnce.Do(func() {
		err = registerCurriculum(v)
	})
	return err
}

func registerCurriculum(v *validator.Validate) error {
	tags := map[string]func(string) bool{
		"subject":           curriculum.IsSubject,
		"period":            curriculum.IsPeriod,
		"assessment_method": curriculum.IsMethod,
	}
	for tag, valid := range tags {
		valid := valid
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || valid(s)
		}); err != nil {
			return err
		}
	}
	v.RegisterStructValidation(validatePlanDomain, dto.AssessmentPlanDTO{})
	return nil
}

// validatePlanDomain requires the domain to belong to the chosen subject.
func validatePlanDomain(sl validator.StructLevel) {
	plan := sl.Current().Interface().(dto.AssessmentPlanDTO)
	if plan.Subject == "" || plan.Domain == "" || !curriculum.IsSubject(plan.Subject) {
		return
	}
	if !curriculum.IsDomain(plan.Subject, plan.Domain) {
		sl.ReportError(plan.Domain, "domain", "Domain", "domain", plan.Subject)
	}
}

// validationDetails flattens binding errors into one message per field.
func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Namespace()+": failed '"+fe.Tag()+"' check")
	}
	return out
}

package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"adscape/shared/constant"
	"adscape/shared/failure"

	val "github.com/go-playground/validator/v10"
)

const (
	bytesPerMegabyte = 1 << 20
	// sniffLen is all http.DetectContentType looks at.
	sniffLen = 512
)

var (
	validate     *val.Validate
	phonePattern = regexp.MustCompile(`^\+?\(?[0-9][0-9 ()\-]{5,19}$`)
)

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	rules := map[string]val.Func{
		"phone":       isPhone,
		"isodate":     isISODate,
		"mimetypes":   hasMimetype,
		"maxfilesize": withinFileSize,
	}

	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// jsonName reports fields by their wire name so messages match what the client sent.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return constant.Empty
	}

	if name == constant.Empty {
		return field.Name
	}

	return name
}

func isPhone(field val.FieldLevel) bool {
	return phonePattern.MatchString(field.Field().String())
}

func isISODate(field val.FieldLevel) bool {
	_, err := time.Parse(constant.DateOnlyFormat, field.Field().String())

	return err == nil
}

// hasMimetype judges the upload by its leading bytes. The Content-Type the client declared is ignored.
func hasMimetype(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	contentType, err := sniffContentType(&file)
	if err != nil {
		return false
	}

	return slices.Contains(strings.Fields(field.Param()), contentType)
}

func sniffContentType(header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return constant.Empty, fmt.Errorf("opening upload: %w", err)
	}
	defer file.Close()

	buf := make([]byte, sniffLen)

	n, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return constant.Empty, fmt.Errorf("reading upload: %w", err)
	}

	mediaType, _, err := mime.ParseMediaType(http.DetectContentType(buf[:n]))
	if err != nil {
		return constant.Empty, fmt.Errorf("parsing detected type: %w", err)
	}

	return mediaType, nil
}

func withinFileSize(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	maxMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	return float64(file.Size) <= maxMB*bytesPerMegabyte
}

// Validate decodes a JSON body into data and runs the struct rules on it.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

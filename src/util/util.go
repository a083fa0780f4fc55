package util

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// filePath为空时只使用defaults与环境变量
func ReadConfig(filePath string, defaults map[string]interface{}, out interface{}) error {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // for nested structure
	v.AutomaticEnv()

	if filePath != "" {
		v.SetConfigFile(filePath)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return err
	}

	return nil
}

var schemeRegexp = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:`)

// 绝对url原样返回，相对url按照标准的url join规则基于base补全
// 例如 img/foo.jpg + https://example.com/eci/ => https://example.com/eci/img/foo.jpg
// 直接在原始字符串上拼接，不做任何转义，空格、非ascii字符、单独的%都保持原样
func ResolveURL(base *url.URL, u string) string {
	if schemeRegexp.MatchString(u) {
		return u
	}
	if strings.HasPrefix(u, "//") {
		return base.Scheme + ":" + u
	}

	p, rest := u, ""
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		p, rest = u[:i], u[i:]
	}

	var merged string
	switch {
	case p == "":
		merged = base.Path
		if !strings.HasPrefix(rest, "?") && base.RawQuery != "" {
			rest = "?" + base.RawQuery + rest
		}
	case strings.HasPrefix(p, "/"):
		merged = p
	default:
		merged = base.Path[:strings.LastIndex(base.Path, "/")+1] + p
	}
	if !strings.HasPrefix(merged, "/") {
		merged = "/" + merged
	}

	return base.Scheme + "://" + base.Host + removeDotSegments(merged) + rest
}

// 处理路径中的.和..，保留结尾的/
func removeDotSegments(p string) string {
	var out []string
	segments := strings.Split(p, "/")
	for i, seg := range segments {
		last := i == len(segments)-1
		switch seg {
		case ".":
			if last {
				out = append(out, "")
			}
		case "..":
			if len(out) > 1 {
				out = out[:len(out)-1]
			}
			if last {
				out = append(out, "")
			}
		default:
			out = append(out, seg)
		}
	}
	return strings.Join(out, "/")
}

var percentRegexp = regexp.MustCompile(`%([0-9A-Fa-f]{2})?`)

// 请求前把不构成合法转义的%替换为%25，其余字符交给net/http处理
func RequestURL(u string) string {
	return percentRegexp.ReplaceAllStringFunc(u, func(m string) string {
		if len(m) == 3 {
			return m
		}
		return "%25"
	})
}

// 取url中最后一个/之后的部分，可能为空
func FileNameFromURL(u string) string {
	return u[strings.LastIndex(u, "/")+1:]
}

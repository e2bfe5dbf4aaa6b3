package main

const vsSource = `#version 300 es
	layout (location = 0) in vec4 aVertexPosition;
	layout (location = 1) in vec3 aVertexNormal;
	layout (location = 2) in vec3 aVertexColor;
	uniform mat4 uModelMatrix;
	uniform mat4 uViewMatrix;
	uniform mat4 uProjectionMatrix;
	out lowp vec3 vColor;

	void main(void) {
		gl_Position = uProjectionMatrix * uViewMatrix * uModelMatrix * aVertexPosition;
		lowp vec3 n = normalize(mat3(uModelMatrix) * aVertexNormal);
		vColor = aVertexColor * (0.7 + 0.3 * abs(n.z));
	}
`

const fsSource = `#version 300 es
	in lowp vec3 vColor;
	out lowp vec4 outColor;

	void main(void) {
		outColor = vec4(vColor, 1.0);
	}
`
